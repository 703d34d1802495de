package num

import (
	"fmt"
	"io"
	"strings"
)

// Parse installs into out the value of text, interpreted as a base-10
// decimal matching the regex [+-]?(\d+(\.\d*)?|\.\d+). Leading zeros on the
// integer part are discarded. The fractional part is truncated to at most
// scale digits; the result's stored scale is min(fractional digits
// provided, scale). Malformed input (extraneous characters, or no digits at
// all) installs a shared handle to Zero rather than failing — the caller is
// expected to have validated the syntax already.
func Parse(out **Num, text string, scale int32) {
	n, ok := parse(text, scale)
	if !ok {
		install(out, Retain(Zero))
		return
	}
	install(out, n)
}

func parse(s string, scale int32) (*Num, bool) {
	digits := strings.Builder{}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			digits.WriteByte('-')
		}
		i++
	}
	sawLeadingZero := false
	for i < len(s) && s[i] == '0' {
		i++
		sawLeadingZero = true
	}
	intDigits := 0
	for i < len(s) && isDigit(s[i]) {
		digits.WriteByte(s[i])
		i++
		intDigits++
	}
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			digits.WriteByte(s[i])
			i++
			fracDigits++
		}
	}
	// A value consisting only of discarded leading zeros (e.g. "0", "00",
	// "0.") is a valid zero, not malformed input; only "no digits anywhere"
	// (e.g. "-", ".") is.
	if i != len(s) || (intDigits+fracDigits == 0 && !sawLeadingZero) {
		return nil, false
	}

	keep := minScale32(int32(fracDigits), scale)
	drop := fracDigits - int(keep)
	str := digits.String()
	if drop > 0 {
		str = str[:len(str)-drop]
	}
	if str == "" || str == "-" {
		str += "0"
	}

	n := NewNum(keep)
	if _, ok := n.unscaled.SetString(str, 10); !ok {
		Release(&n)
		return nil, false
	}
	return n, true
}

func minScale32(a, b int32) int32 {
	return minScale(a, b)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Format returns n's base-10 text: "-" if negative, the integer digits (at
// least one), and if n's scale is positive, "." followed by exactly that
// many fractional digits, zero-padded on the left as needed.
func Format(n *Num) string {
	scale := n.scale
	s := n.unscaled.String()
	if scale <= 0 {
		return s
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	if int32(len(s)) <= scale {
		s = strings.Repeat("0", int(scale)-len(s)+1) + s
	}
	intPart, fracPart := s[:len(s)-int(scale)], s[len(s)-int(scale):]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// String implements fmt.Stringer.
func (n *Num) String() string {
	if n == nil {
		return "<nil>"
	}
	return Format(n)
}

// Format implements fmt.Formatter for the 'd', 'f', 'v' and 's' verbs.
// Width, precision and non-decimal bases are not supported here; use
// OutNum for base-B output.
func (n *Num) Format(state fmt.State, verb rune) {
	if verb != 'd' && verb != 'f' && verb != 'v' && verb != 's' {
		fmt.Fprintf(state, "%%!%c(num.Num=%s)", verb, Format(n))
		return
	}
	io.WriteString(state, Format(n))
}

// Scan implements fmt.Scanner, the same base-10 grammar as Parse, with no
// explicit scale bound (it accepts as many fractional digits as are
// present).
func (n *Num) Scan(state fmt.ScanState, verb rune) error {
	if verb != 'd' && verb != 'f' && verb != 's' && verb != 'v' {
		return fmt.Errorf("num.Num.Scan: invalid verb %q", verb)
	}
	state.SkipSpace()
	text, err := scanToken(state)
	if err != nil {
		return err
	}
	parsed, ok := parse(text, 1<<30)
	if !ok {
		return fmt.Errorf("num.Num.Scan: invalid decimal: %s", text)
	}
	n.unscaled.Set(&parsed.unscaled)
	n.scale = parsed.scale
	Release(&parsed)
	return nil
}

func scanToken(r io.RuneScanner) (string, error) {
	var b strings.Builder
	sawDigit, sawDot := false, false
	for {
		ch, _, err := r.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch {
		case ch == '+' || ch == '-':
			if b.Len() > 0 {
				r.UnreadRune()
				goto done
			}
		case ch == '.':
			if sawDot {
				r.UnreadRune()
				goto done
			}
			sawDot = true
		case ch >= '0' && ch <= '9':
			sawDigit = true
		default:
			r.UnreadRune()
			goto done
		}
		b.WriteRune(ch)
	}
done:
	if !sawDigit {
		return "", fmt.Errorf("num.Num.Scan: no digits read")
	}
	return b.String(), nil
}

const gobVersion byte = 1

// GobEncode implements gob.GobEncoder.
func (n *Num) GobEncode() ([]byte, error) {
	buf, err := n.unscaled.GobEncode()
	if err != nil {
		return nil, err
	}
	var scaleBytes [4]byte
	s := n.scale
	for i := 3; i >= 0; i-- {
		scaleBytes[i] = byte(s)
		s >>= 8
	}
	buf = append(buf, scaleBytes[:]...)
	buf = append(buf, gobVersion)
	return buf, nil
}

// GobDecode implements gob.GobDecoder.
func (n *Num) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("num.Num.GobDecode: no data")
	}
	version := buf[len(buf)-1]
	if version != gobVersion {
		return fmt.Errorf("num.Num.GobDecode: encoding version %d not supported", version)
	}
	l := len(buf) - 4 - 1
	if l < 0 {
		return fmt.Errorf("num.Num.GobDecode: truncated data")
	}
	if err := n.unscaled.GobDecode(buf[:l]); err != nil {
		return err
	}
	var s int32
	for _, b := range buf[l : l+4] {
		s = s<<8 | int32(b)
	}
	n.scale = s
	return nil
}
