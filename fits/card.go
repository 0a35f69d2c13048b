package fits

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// keywordLen is the width of the fixed keyword field of a standard card.
	keywordLen = 8
	// hierarch prefixes long-keyword cards.
	hierarch = "HIERARCH"
	// hierarchFill is the keyword plus value width at which the space before
	// '=' is dropped so the card exactly fills 80 columns.
	hierarchFill = CardSize - 2
)

// Kind tells how a card value is typed and laid out.
type Kind int

const (
	// Unparsed cards carry their value text through untouched.
	Unparsed Kind = iota
	Boolean
	Numeric
	String
	// FreeText is the body of a COMMENT or HISTORY card.
	FreeText
	// Continuation is a CONTINUE card; its text is kept in Comment.
	Continuation
)

func (k Kind) String() string {
	switch k {
	case Unparsed:
		return "unparsed"
	case Boolean:
		return "boolean"
	case Numeric:
		return "numeric"
	case String:
		return "string"
	case FreeText:
		return "freetext"
	case Continuation:
		return "continuation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Card is one logical header entry. An empty Comment means no comment.
type Card struct {
	Keyword string
	Kind    Kind
	Value   string
	Comment string
}

// Keyword returns the trimmed, upper-cased keyword field of a raw card image.
func Keyword(image string) string {
	if len(image) > keywordLen {
		image = image[:keywordLen]
	}
	return strings.ToUpper(strings.TrimSpace(image))
}

// ParseCard decodes one card image.
func ParseCard(image string) (Card, error) {
	if len(image) < keywordLen {
		return Card{}, &MalformedCardError{Image: image, Reason: "shorter than keyword field"}
	}

	switch kwd := Keyword(image); kwd {
	case "CONTINUE":
		return Card{Keyword: kwd, Kind: Continuation, Comment: strings.TrimSpace(image[keywordLen:])}, nil
	case "HISTORY", "COMMENT":
		return Card{Keyword: kwd, Kind: FreeText, Value: strings.TrimSpace(image[keywordLen:])}, nil
	}

	eq := strings.IndexByte(image, '=')
	if eq < 0 {
		return Card{}, &MalformedCardError{Image: image, Reason: "missing '='"}
	}

	card := Card{Keyword: strings.TrimSpace(image[:eq])}
	rest := strings.TrimSpace(image[eq+1:])
	if rest == "" {
		card.Kind = Unparsed
		return card, nil
	}

	switch rest[0] {
	case 'T', 'F':
		card.Kind = Boolean
		card.Value = rest[:1]
		card.Comment = commentAfter(rest)
	case '\'':
		value, end, ok := unquote(rest)
		if !ok {
			return Card{}, &MalformedCardError{Image: image, Reason: "unterminated string"}
		}
		card.Kind = String
		card.Value = value
		card.Comment = commentAfter(rest[end:])
	default:
		value := rest
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			value = rest[:i]
		}
		card.Kind = Numeric
		card.Value = strings.TrimSpace(value)
		card.Comment = commentAfter(rest)
	}

	return card, nil
}

// commentAfter returns the trimmed text after the first '/' in s.
func commentAfter(s string) string {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(s[i+1:])
}

// unquote scans the quoted literal at the start of s, resolving doubled
// quotes. end is the index just past the closing quote.
func unquote(s string) (value string, end int, ok bool) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		return b.String(), i + 1, true
	}
	return "", 0, false
}

// Format encodes the card as an 80 column image, truncating anything beyond
// column 80.
func (c Card) Format() string {
	return pad(c.image())
}

// FormatStrict is Format, but fails with ErrCardTooLong when the keyword and
// value alone do not fit on the card. A comment that does not fit is still
// truncated.
func (c Card) FormatStrict() (string, error) {
	if body := c.body(); len(body) > CardSize {
		return "", errors.Wrapf(ErrCardTooLong, "%s is %d characters", strings.ToUpper(c.Keyword), len(body))
	}
	return c.Format(), nil
}

func (c Card) image() string {
	card := c.body()
	switch c.Kind {
	case Continuation, FreeText:
		return card
	}
	if c.Comment != "" {
		card += " / " + c.Comment
	}
	return card
}

// body is the card text without the trailing comment.
func (c Card) body() string {
	keyword := strings.ToUpper(c.Keyword)

	var value, layout string
	switch c.Kind {
	case Continuation:
		return "CONTINUE " + c.Comment
	case FreeText:
		return keyword + " " + c.Value
	case String:
		value = fmt.Sprintf("'%-8s'", strings.ReplaceAll(c.Value, "'", "''"))
		layout = "%-8s= %-20s"
	case Boolean, Numeric:
		value = strings.ToUpper(c.Value)
		layout = "%-8s= %20s"
	default:
		value = c.Value
		layout = "%-8s= %20s"
	}

	if strings.HasPrefix(keyword, hierarch) {
		if len(keyword)+len(value) == hierarchFill {
			return keyword + "= " + value
		}
		return keyword + " = " + value
	}
	return fmt.Sprintf(layout, keyword, value)
}

// pad truncates or space-fills image to exactly one card. Characters outside
// printable ASCII become '?'.
func pad(image string) string {
	image = strings.Map(asciiOnly, image)
	if len(image) >= CardSize {
		return image[:CardSize]
	}
	return image + strings.Repeat(" ", CardSize-len(image))
}

func asciiOnly(r rune) rune {
	if r < ' ' || r > '~' {
		return '?'
	}
	return r
}
