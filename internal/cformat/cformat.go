// Package cformat converts binary data into C unsigned-char array literals.
package cformat

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Style selects the literal encoding of the generated array.
type Style string

const (
	// StyleEscaped emits concatenated string literals with \xHH escapes.
	StyleEscaped Style = "escaped"

	// StyleHexArray emits a brace-delimited array of 0xHH values.
	StyleHexArray Style = "hex"
)

// indent prefixes every value line of the generated declaration.
const indent = "    "

// identPattern matches valid C identifiers for the array name.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options controls the shape of the generated declaration.
type Options struct {
	// Name is the C identifier the array is declared under.
	Name string `validate:"required,c_ident"`

	// Width is the number of bytes rendered per line.
	Width int `validate:"required,min=1"`

	// Style selects between escaped-string and hex-array output.
	Style Style `validate:"required,oneof=escaped hex"`
}

// DefaultOptions returns the conventional defaults: a 12-byte-wide
// escaped-string array named "buf".
func DefaultOptions() Options {
	return Options{Name: "buf", Width: 12, Style: StyleEscaped}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("c_ident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks the options against the schema. Invalid options are a
// caller error: rendering never starts with a width below 1, a name that
// is not a C identifier, or an unknown style.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid options: %s", describeFieldError(verrs[0]))
		}
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// describeFieldError turns a single validator failure into an
// operator-facing message.
func describeFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return fmt.Sprintf("array name %q is not a valid C identifier", fe.Value())
	case "Width":
		return fmt.Sprintf("width must be a positive integer, got %v", fe.Value())
	case "Style":
		return fmt.Sprintf("unknown style %q (must be escaped or hex)", fe.Value())
	default:
		return fe.Error()
	}
}

// Render converts data into a C array declaration in the requested style.
// It never mutates data; the same input and options always produce the
// same output.
func Render(data []byte, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	switch opts.Style {
	case StyleHexArray:
		return hexArray(data, opts.Name, opts.Width), nil
	default:
		return escaped(data, opts.Name, opts.Width), nil
	}
}

// escaped renders the string-concatenation style:
//
//	unsigned char buf[] =
//	    "\x7F\x45\x4C\x46"
//	    "\x02\x01";
//	/* Length: 6 bytes */
//
// Adjacent string literals are concatenated by the C compiler itself.
// Empty input collapses to a one-line empty-string declaration with no
// length comment; callers depend on that exact shape.
func escaped(data []byte, name string, width int) string {
	if len(data) == 0 {
		return fmt.Sprintf("unsigned char %s[] = \"\";", name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "unsigned char %s[] =\n", name)
	for start := 0; start < len(data); start += width {
		end := start + width
		if end > len(data) {
			end = len(data)
		}
		b.WriteString(indent)
		b.WriteByte('"')
		for _, v := range data[start:end] {
			fmt.Fprintf(&b, "\\x%02X", v)
		}
		b.WriteByte('"')
		if end == len(data) {
			b.WriteByte(';')
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "/* Length: %d bytes */", len(data))
	return b.String()
}

// hexArray renders the brace-array style:
//
//	unsigned char buf[] = {
//	    0x7F, 0x45,
//	    0x4C, 0x46
//	};
//	/* Length: 4 bytes */
//
// Unlike the escaped style, the length comment is emitted even for
// empty input.
func hexArray(data []byte, name string, width int) string {
	var b strings.Builder
	if len(data) == 0 {
		fmt.Fprintf(&b, "unsigned char %s[] = {};\n", name)
		fmt.Fprintf(&b, "/* Length: 0 bytes */")
		return b.String()
	}

	fmt.Fprintf(&b, "unsigned char %s[] = {\n", name)
	for start := 0; start < len(data); start += width {
		end := start + width
		if end > len(data) {
			end = len(data)
		}
		b.WriteString(indent)
		for i, v := range data[start:end] {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", v)
		}
		if end < len(data) {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("};\n")
	fmt.Fprintf(&b, "/* Length: %d bytes */", len(data))
	return b.String()
}
