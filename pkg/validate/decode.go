package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidJSON — тело не разбирается строго (неизвестные поля, мусор после объекта).
var ErrInvalidJSON = errors.New("invalid json")

// DecodeStrict — json c DisallowUnknownFields и проверкой отсутствия данных после объекта.
func DecodeStrict(raw []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}
