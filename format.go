package kstdio

// lengthMod narrows or widens the argument width a numeric conversion
// prints at. The h and hh forms truncate the consumed value; l and ll
// keep the full 64 bits.
type lengthMod uint8

const (
	modNone lengthMod = iota
	modShort
	modChar // hh: unsigned char semantics
	modLong
	modLongLong
)

// directive is the transient state of one %-led format directive: flag,
// width, length modifier, numeric base, and the running count of template
// bytes the directive has occupied. A fresh value is built per directive
// and discarded once it resolves.
type directive struct {
	zeroPad  bool
	width    int
	mod      lengthMod
	base     uint
	started  bool
	consumed int
}

// directive interprets one %-led directive at the head of format,
// consuming arguments as the conversion dictates and emitting the result
// into the ring. It returns the number of template bytes the directive
// occupied so the driver can advance its cursor past it.
//
// Grammar: '%' ['0' digits] [l | ll | h | hh] conversion, where the
// conversion is one of d i u x o p s c, or a second '%' immediately after
// the first to emit a literal percent sign. Length modifiers apply to the
// numeric conversions only, and a plain width without the zero flag does
// not exist in this language.
//
// Any malformed directive reports zero consumed bytes and an error; the
// caller aborts the whole call.
func (c *Console) directive(format string, args *arguments) (int, error) {
	var d directive
	for d.consumed < len(format) {
		switch format[d.consumed] {
		case '%':
			if !d.started {
				d.started = true
			} else if d.consumed == 1 {
				// '%' directly after '%': literal percent.
				c.rb.writeByte('%')
				return 2, nil
			} else {
				// content between the two '%' chars, e.g. "%02%"
				return 0, ErrInvalidFormat
			}
		case '0':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			d.zeroPad = true
			for d.consumed+1 < len(format) && format[d.consumed+1] >= '0' && format[d.consumed+1] <= '9' {
				d.width = d.width*10 + int(format[d.consumed+1]-'0')
				if d.width > c.maxWidth {
					return 0, ErrInvalidFormat
				}
				d.consumed++
			}
		case 'l':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			d.mod = modLong
			if d.consumed+1 < len(format) && format[d.consumed+1] == 'l' {
				d.mod = modLongLong
				d.consumed++
			}
		case 'h':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			d.mod = modShort
			if d.consumed+1 < len(format) && format[d.consumed+1] == 'h' {
				d.mod = modChar
				d.consumed++
			}
		case 'd', 'i':
			if !d.started {
				return 0, ErrInvalidFormat
			}
			d.base = 10
			if err := c.emitSigned(&d, args); err != nil {
				return 0, err
			}
			return d.consumed + 1, nil
		case 'u':
			if !d.started {
				return 0, ErrInvalidFormat
			}
			d.base = 10
			if err := c.emitUnsigned(&d, args); err != nil {
				return 0, err
			}
			return d.consumed + 1, nil
		case 'x':
			if !d.started {
				return 0, ErrInvalidFormat
			}
			d.base = 16
			if err := c.emitUnsigned(&d, args); err != nil {
				return 0, err
			}
			return d.consumed + 1, nil
		case 'o':
			if !d.started {
				return 0, ErrInvalidFormat
			}
			d.base = 8
			if err := c.emitUnsigned(&d, args); err != nil {
				return 0, err
			}
			return d.consumed + 1, nil
		case 'p':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			d.base = 16
			if err := c.emitPointer(&d, args); err != nil {
				return 0, err
			}
			return d.consumed + 1, nil
		case 's':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			if d.zeroPad && d.width > 0 {
				// no zero-pad width for strings
				return 0, ErrInvalidFormat
			}
			s, b, err := args.str()
			if err != nil {
				return 0, err
			}
			c.rb.writeString(s)
			c.rb.writeBytes(b)
			return d.consumed + 1, nil
		case 'c':
			if !d.started || d.mod != modNone {
				return 0, ErrInvalidFormat
			}
			if d.zeroPad && d.width > 0 {
				// no zero-pad width for chars
				return 0, ErrInvalidFormat
			}
			v, err := args.integer()
			if err != nil {
				return 0, err
			}
			c.rb.writeByte(byte(v))
			return d.consumed + 1, nil
		default:
			return 0, ErrInvalidFormat
		}
		d.consumed++
	}
	// the template ended inside the directive
	return 0, ErrInvalidFormat
}

// emitSigned prints a signed decimal. The length modifier narrows the
// value first: h to 16 signed bits, hh to unsigned char. Negative values
// print a leading '-' that counts toward the zero-pad width; the value
// itself is never truncated to fit the width.
func (c *Console) emitSigned(d *directive, args *arguments) error {
	bits, err := args.integer()
	if err != nil {
		return err
	}
	v := int64(bits)
	switch d.mod {
	case modShort:
		v = int64(int16(v))
	case modChar:
		v = int64(uint8(v))
	}
	mag := uint64(v)
	length := 0
	if v < 0 {
		mag = ^mag + 1
		length = 1
		c.rb.writeByte('-')
	}
	length += numberLen(mag, d.base)
	if d.zeroPad {
		for i := length; i < d.width; i++ {
			c.rb.writeByte('0')
		}
	}
	c.rb.writeNumber(mag, d.base)
	return nil
}

// emitUnsigned prints an unsigned value in the directive's base. The
// length modifier reinterprets the low bits: h keeps 16, hh keeps 8.
func (c *Console) emitUnsigned(d *directive, args *arguments) error {
	v, err := args.integer()
	if err != nil {
		return err
	}
	switch d.mod {
	case modShort:
		v = uint64(uint16(v))
	case modChar:
		v = uint64(uint8(v))
	}
	if d.zeroPad {
		for i := numberLen(v, d.base); i < d.width; i++ {
			c.rb.writeByte('0')
		}
	}
	c.rb.writeNumber(v, d.base)
	return nil
}

// emitPointer prints an address as 0x-prefixed lowercase hex. The
// conversion pads to the requested width whether or not the zero flag was
// given, unlike the other numeric conversions; the asymmetry is
// long-standing behavior of this directive language and is kept as is.
func (c *Console) emitPointer(d *directive, args *arguments) error {
	v, err := args.pointer()
	if err != nil {
		return err
	}
	c.rb.writeString("0x")
	for i := numberLen(v, d.base); i < d.width; i++ {
		c.rb.writeByte('0')
	}
	c.rb.writeNumber(v, d.base)
	return nil
}

// numberLen returns the printed digit count of v in base; zero still
// occupies one digit.
func numberLen(v uint64, base uint) int {
	n := 1
	for v /= uint64(base); v != 0; v /= uint64(base) {
		n++
	}
	return n
}

// print is the template driver: literal bytes go straight into the ring,
// each '%' hands the remaining template to the directive interpreter and
// the cursor advances by what it consumed. The first malformed directive
// aborts the call; bytes written before it stay in the ring.
//
// The returned count is the logical length of the formatted output,
// counting bytes a saturated ring had to drop.
func (c *Console) print(format string, args []any) (int, error) {
	al := arguments{list: args}
	before := c.rb.wrote
	i := 0
	for i < len(format) {
		if format[i] == '%' {
			consumed, err := c.directive(format[i:], &al)
			if err != nil {
				return int(c.rb.wrote - before), err
			}
			i += consumed
		} else {
			c.rb.writeByte(format[i])
			i++
		}
	}
	return int(c.rb.wrote - before), nil
}
