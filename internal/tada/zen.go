package tada

import "math/rand/v2"

var zenQuotes = []string{
	"The nearer a man comes to a calm mind, the closer he is to strength.",
	"It is in your power to withdraw yourself whenever you desire. Perfect tranquility\nwithin consists in the good ordering of the mind, the realm of your own.",
	"All sorrows are destroyed upon attainment of tranquility. The intellect of such\na tranquil person soon becomes completely steady.",
	"A samurai must remain calm at all times even in the face of danger.",
	"Those who are free of resentful thoughts surely find peace.",
	"Passaddhi, calm or tranquillity, is the fifth factor of enlightenment.",
	"You are the sky. Everything else... it's just the weather.",
	"The pursuit, even of the best things, ought to be calm and tranquil.",
	"We think a happy life consists in tranquility of mind.",
	"Quiet is peace. Tranquility. Quiet is turning down the volume knob on life. Silence\nis pushing the off button. Shutting it down. All of it.",
	"Tranquillity is a fertile soil where you can plant and reap the solutions!",
	"I never lose; either win or learn.",
	"The noonday quiet holds the hill.",
	"No snowflake ever falls in the wrong place.",
	"When you reach the top of the mountain, keep climbing.",
}

// ZenQuote returns a calming quote.
func ZenQuote() string {
	return zenQuotes[rand.IntN(len(zenQuotes))]
}
