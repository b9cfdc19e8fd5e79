package fishtexttest

import "strings"

var words = strings.Fields(`lorem ipsum dolor sit amet consectetur adipiscing elit sed do
eiusmod tempor incididunt ut labore et dolore magna aliqua ut enim ad minim veniam quis
nostrud exercitation ullamco laboris nisi aliquip ex ea commodo consequat`)

// Generate returns number units of deterministic filler text of the given
// type. Sentences are joined by a space, paragraphs and titles by a blank line.
func Generate(textType string, number int) string {
	if number <= 0 {
		return ""
	}

	units := make([]string, number)
	for i := range units {
		switch textType {
		case "paragraph":
			sentences := make([]string, 3)
			for j := range sentences {
				sentences[j] = sentence(i*3+j, 8)
			}
			units[i] = strings.Join(sentences, " ")
		case "title":
			units[i] = strings.TrimSuffix(sentence(i, 4), ".")
		default:
			units[i] = sentence(i, 8)
		}
	}

	sep := " "
	if textType == "paragraph" || textType == "title" {
		sep = "\n\n"
	}

	return strings.Join(units, sep)
}

// sentence builds the idx-th sentence of n words, capitalised and closed
// with a full stop.
func sentence(idx, n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = words[(idx*n+i)%len(words)]
	}
	out[0] = strings.ToUpper(out[0][:1]) + out[0][1:]

	return strings.Join(out, " ") + "."
}
