package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Gunvolt24/storefront/pkg/validate"
)

// validate-orders — проверка выгрузки заказов витрины (COD и мессенджер) перед
// импортом в back-office или повторной отправкой в топик orders.
// Валидные заказы печатаются в stdout каноническим JSON, отчёт и ошибки строк — в stderr.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate-orders", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "order dump: one storefront order per .json file or one per line in .jsonl (stdin when empty)")
	format := fs.String("format", string(validate.FormatAuto), "dump format: auto|json|jsonl (stdin defaults to jsonl)")
	quiet := fs.Bool("quiet", false, "report only, do not print canonical orders")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	f := validate.InputFormat(*format)
	switch f {
	case validate.FormatAuto, validate.FormatJSON, validate.FormatJSONL:
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", *format)
		return 2
	}

	path := *in
	if path == "" {
		path = "/dev/stdin"
		if f == validate.FormatAuto {
			f = validate.FormatJSONL
		}
	}

	out := stdout
	if *quiet {
		out = io.Discard
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := validate.ValidateFile(ctx, validate.NewOrderValidator(), path, f, out)
	for _, le := range report.Errors {
		fmt.Fprintf(stderr, "line %d: %v\n", le.Line, le.Err)
	}
	if err != nil {
		fmt.Fprintf(stderr, "orders rejected: %v (%s)\n", err, report)
		return 1
	}
	if report.Invalid > 0 {
		fmt.Fprintf(stderr, "orders rejected (%s)\n", report)
		return 1
	}
	fmt.Fprintf(stderr, "orders ok (%s)\n", report)
	return 0
}
