package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/storefront/internal/domain"
	"github.com/Gunvolt24/storefront/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// LineError — причина отказа для конкретной строки входа (1-based).
type LineError struct {
	Line int
	Err  error
}

// Report — итог проверки файла заказов.
type Report struct {
	Valid   int
	Invalid int
	Errors  []LineError
}

func (r Report) String() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// OrderFromJSON — строгий разбор одного заказа и доменная проверка.
func OrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.Order, error) {
	var order domain.Order
	if err := DecodeStrict(raw, &order); err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ValidateFile — проверяет файл заказов (JSON-объект или JSONL) и пишет канонический JSON валидных записей.
// Формат auto определяется по расширению, по умолчанию JSON.
func ValidateFile(ctx context.Context, validator ports.OrderValidator, path string, format InputFormat, w io.Writer) (Report, error) {
	if format == FormatAuto {
		format = FormatJSON
		if strings.EqualFold(filepath.Ext(path), ".jsonl") {
			format = FormatJSONL
		}
	}
	if format != FormatJSON && format != FormatJSONL {
		return Report{}, fmt.Errorf("unsupported format: %s", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if format == FormatJSONL {
		return ValidateJSONL(ctx, validator, f, w)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return Report{}, fmt.Errorf("read file: %w", err)
	}
	order, err := OrderFromJSON(ctx, validator, raw)
	if err != nil {
		return Report{Invalid: 1, Errors: []LineError{{Line: 1, Err: err}}}, err
	}
	if err := writeCanonical(w, order); err != nil {
		return Report{}, err
	}
	return Report{Valid: 1}, nil
}

// ValidateJSONL — построчная проверка; невалидные строки попадают в отчёт, пустые пропускаются.
func ValidateJSONL(ctx context.Context, validator ports.OrderValidator, r io.Reader, w io.Writer) (Report, error) {
	var rep Report

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		order, err := OrderFromJSON(ctx, validator, raw)
		if err != nil {
			rep.Invalid++
			rep.Errors = append(rep.Errors, LineError{Line: line, Err: err})
			continue
		}
		if err := writeCanonical(w, order); err != nil {
			return rep, err
		}
		rep.Valid++
	}
	if err := scanner.Err(); err != nil {
		return rep, fmt.Errorf("scan: %w", err)
	}
	return rep, nil
}

func writeCanonical(w io.Writer, order *domain.Order) error {
	b, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write order: %w", err)
	}
	return nil
}
