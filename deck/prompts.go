// deck/prompts.go
package deck

// prompts maps each rank to the rule text read out when the card is drawn.
// Kings intentionally repeat the rank-4 text.
var prompts = map[Rank]string{
	1:  "Waterfall: the player with the card starts drinking and it goes round the circle, when it gets back to the player they can then stop drinking and then it follows round",
	2:  "You: Pick someone to drink",
	3:  "Me: Drink yourself",
	4:  "Whores: All girls drink",
	5:  "Thumb master: The person with the card may place their thumb on the table at any time during the game and the last person to do so has to drink",
	6:  "Dicks: all guys drink",
	7:  "Heaven: The person with the card may raise their hand at any time during the game and the last person to do so has to drink",
	8:  "Mate: pick a mate who has to drink with you",
	9:  "Rhyme: Say a word and go round the circle rhyming with that word, whoever hesitates or can't think of a rhyming word has to drink, words with no rhyme such as orange are banned",
	10: "Categories: say a word from that category and go round the circle, whoever hesitates or can't think of a word associated with that category has to drink",
	11: "Rule: Make a new rule for the game",
	12: "Question master: if you ask a player a question and they answer they have to drink, if they answer the question with \"Fuck you question master\" then you have to drink",
	13: "Whores: All girls drink",
}

// Prompt returns the rule text for a rank.
func Prompt(r Rank) string {
	return prompts[r]
}
