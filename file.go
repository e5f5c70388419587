package huffman

import (
	"bytes"
	"io"
	"os"
)

const fileMode = 0644

// EncodeTo encodes text, then writes the serialized CodeTable to table and the
// packed payload to payload.
//
// When text has nothing to encode, both outputs are left empty.
//
func (c *Codec) EncodeTo(text string, payload io.Writer, table io.Writer) error {
	bits := c.Encode(text)
	if bits == "" {
		return nil
	}

	data, err := Pack(bits)
	if err != nil {
		return err
	}
	if err := c.WriteTable(table); err != nil {
		return err
	}
	if _, err := payload.Write(data); err != nil {
		return err
	}
	c.log.Debugf("packed %d bits into %d bytes", len(bits), len(data))
	return nil
}

// DecodeFrom loads the CodeTable serialized in table, then unpacks and
// decodes payload with it.
//
// The session is only replaced once both inputs have been read and the table
// has been parsed.
//
func (c *Codec) DecodeFrom(payload io.Reader, table io.Reader) (string, error) {
	ct, err := ReadCodeTable(table)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(payload)
	if err != nil {
		return "", err
	}
	return c.decodePacked(ct, data)
}

// EncodeToFile encodes text and writes the code table to tablePath and the
// packed payload to payloadPath, replacing any existing files.
func (c *Codec) EncodeToFile(text string, payloadPath string, tablePath string) error {
	var payload, table bytes.Buffer
	if err := c.EncodeTo(text, &payload, &table); err != nil {
		return err
	}
	if err := writeFile(tablePath, table.Bytes()); err != nil {
		return err
	}
	if err := writeFile(payloadPath, payload.Bytes()); err != nil {
		return err
	}
	c.log.Infof("wrote %s (%d bytes) and %s (%d bytes)", payloadPath, payload.Len(), tablePath, table.Len())
	return nil
}

// DecodeFromFile loads the code table at tablePath, then decodes the payload
// at payloadPath with it.
//
// Any read failure is returned as an *IOError and leaves the session as it
// was; nothing is decoded from a partially read input.
//
func (c *Codec) DecodeFromFile(payloadPath string, tablePath string) (string, error) {
	rawTable, err := readFile(tablePath)
	if err != nil {
		return "", err
	}
	ct, err := ParseCodeTable(rawTable)
	if err != nil {
		return "", err
	}
	data, err := readFile(payloadPath)
	if err != nil {
		return "", err
	}
	return c.decodePacked(ct, data)
}

// decodePacked loads ct and decodes data with it.  In ModeTree the Tree is
// rebuilt from ct first; otherwise codes are looked up in ct directly.
func (c *Codec) decodePacked(ct *CodeTable, data []byte) (string, error) {
	c.LoadTable(ct)
	if c.mode == ModeTree {
		t, err := TreeFromTable(ct)
		if err != nil {
			return "", err
		}
		c.tree = t
	}

	bits, err := Unpack(data)
	if err != nil {
		return "", err
	}
	text, err := c.Decode(bits)
	if err != nil {
		return "", err
	}
	c.log.Debugf("unpacked %d bytes into %d bits, decoded %d bytes", len(data), len(bits), len(text))
	return text, nil
}

// EncodeToFile is a convenience wrapper around Codec.EncodeToFile with a new
// Codec.
func EncodeToFile(text string, payloadPath string, tablePath string) error {
	return NewCodec().EncodeToFile(text, payloadPath, tablePath)
}

// DecodeFromFile is a convenience wrapper around Codec.DecodeFromFile with a
// new Codec.
func DecodeFromFile(payloadPath string, tablePath string) (string, error) {
	return NewCodec().DecodeFromFile(payloadPath, tablePath)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, fileMode); err != nil {
		log.Errorf("write %s: %v", path, err)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Errorf("read %s: %v", path, err)
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}
