package pdu

/*
This file contains the routines for reading from and writing to PDU bodies
*/

// dataBuilder is used to build outgoing PDU bodies
type dataBuilder struct {
	data []byte
}

func (p *dataBuilder) payload() []byte {
	return p.data
}

func (p *dataBuilder) byte(b byte) {
	p.data = append(p.data, b)
}

func (p *dataBuilder) word(w uint16) {
	p.data = append(p.data, byte(w>>8), byte(w&0xff))
}

// bits appends a byte count followed by the values packed LSB-first: the
// value at logical position p lands at bit p%8 of packed byte p/8. Positions
// past the last value stay zero, padding the high end of the final byte.
// More than 2040 values cannot be framed behind a one-byte count and panic.
func (p *dataBuilder) bits(bits ...bool) {
	count := (len(bits) + 7) / 8
	packed := make([]byte, count)
	for c, v := range bits {
		if v {
			packed[c/8] |= 1 << (c % 8)
		}
	}
	p.byte(bytePanic(count))
	p.data = append(p.data, packed...)
}

// dataReader walks an incoming PDU body. All read failures are *FrameError:
// they indicate a corrupted or incompatible byte stream, not a protocol
// violation.
type dataReader struct {
	cursor int
	data   []byte
}

func getReader(payload []byte) dataReader {
	return dataReader{0, payload}
}

func (p *dataReader) canRead(count int) error {
	over := p.cursor + count - len(p.data)
	if over > 0 {
		return frameErrorF("unable to read %v byte(s) beyond end of data. Request %v byte(s) from %v in %v size slice", over, count, p.cursor, len(p.data))
	}
	return nil
}

func (p *dataReader) byte() (byte, error) {
	if err := p.canRead(1); err != nil {
		return 0, err
	}
	b := p.data[p.cursor]
	p.cursor++
	return b, nil
}

func (p *dataReader) word() (uint16, error) {
	if err := p.canRead(2); err != nil {
		return 0, err
	}
	w := uint16(p.data[p.cursor])<<8 | uint16(p.data[p.cursor+1])
	p.cursor += 2
	return w, nil
}

// nbytes reads a one-byte count followed by exactly that many bytes.
func (p *dataReader) nbytes() ([]byte, error) {
	count, err := p.byte()
	if err != nil {
		return nil, err
	}
	if err := p.canRead(int(count)); err != nil {
		return nil, err
	}
	ret := p.data[p.cursor : p.cursor+int(count)]
	p.cursor += int(count)
	return ret, nil
}

func (p *dataReader) remaining() error {
	left := len(p.data) - p.cursor
	if left != 0 {
		ls := ""
		if left != 1 {
			ls = "s"
		}
		return frameErrorF("expected to read all the payload data, but %v byte%v remain", left, ls)
	}
	return nil
}
