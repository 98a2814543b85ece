package system

import "strconv"

var (
	_ Object[String]  = String("")
	_ Object[Int32]   = Int32(0)
	_ Object[Char]    = Char(0)
	_ Object[Boolean] = Boolean(false)
)

type String string

func (s String) Equals(other String) bool { return s == other }

func (s String) HashCode() int { return StringHashCode(string(s)) }

func (s String) String() string { return string(s) }

type Int32 int32

func (i Int32) Equals(other Int32) bool { return i == other }

func (i Int32) HashCode() int { return int(i) }

func (i Int32) String() string { return strconv.FormatInt(int64(i), 10) }

// Char is a single unicode code point.
type Char rune

func (c Char) Equals(other Char) bool { return c == other }

func (c Char) HashCode() int { return int(c) }

func (c Char) String() string { return string(rune(c)) }

type Boolean bool

func (b Boolean) Equals(other Boolean) bool { return b == other }

func (b Boolean) HashCode() int {
	if b {
		return 1
	}
	return 0
}

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
