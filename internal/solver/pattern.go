package solver

const (
	Green  = 'g'
	Yellow = 'y'
	Miss   = '-'
)

// Solved is the pattern of a guess that matches the answer.
const Solved = "ggggg"

// Pattern scores guess against answer.
// Exact matches are marked first and use up their letters, then the remaining letters
// are marked yellow from left to right while the answer still has unused copies.
func Pattern(answer, guess string) string {
	if len(answer) != len(guess) {
		return ""
	}

	pattern := make([]byte, len(guess))
	var remaining [256]int
	for i := 0; i < len(answer); i++ {
		remaining[answer[i]]++
	}

	for i := 0; i < len(guess); i++ {
		pattern[i] = Miss
		if guess[i] == answer[i] {
			pattern[i] = Green
			remaining[guess[i]]--
		}
	}
	for i := 0; i < len(guess); i++ {
		if pattern[i] == Miss && remaining[guess[i]] > 0 {
			pattern[i] = Yellow
			remaining[guess[i]]--
		}
	}
	return string(pattern)
}
