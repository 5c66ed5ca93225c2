package shell

// Token classifies a single byte of input. Tokens are recomputed from
// the byte under the cursor whenever they are needed, never stored.
type Token int

const (
	// TokenContent is any byte that can appear in an argument or a
	// redirect target.
	TokenContent Token = iota
	// TokenPipe separates commands in a pipeline.
	TokenPipe
	// TokenRedirect introduces the output redirect target.
	TokenRedirect
	// TokenSeparator separates arguments within a command.
	TokenSeparator
	// TokenEnd marks the end of the line.
	TokenEnd
)

func (t Token) String() string {
	switch t {
	case TokenContent:
		return "content"
	case TokenPipe:
		return "pipe"
	case TokenRedirect:
		return "redirect"
	case TokenSeparator:
		return "separator"
	case TokenEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Classify maps one byte to its token class. Only a single space is a
// separator; runs of spaces are collapsed by the parsing loops, not
// here.
func Classify(ch byte) Token {
	switch ch {
	case '|':
		return TokenPipe
	case '>':
		return TokenRedirect
	case ' ':
		return TokenSeparator
	case EOL:
		return TokenEnd
	default:
		return TokenContent
	}
}
