// Command slotfinder-eval runs one slot search from a JSON file or stdin and prints the result
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"slotfinder/internal/platform/config"
	perr "slotfinder/internal/platform/errors"
	"slotfinder/internal/platform/logger"
	"slotfinder/internal/platform/net/http/bind"
	"slotfinder/internal/services/api/slots/domain"
	slotsmod "slotfinder/internal/services/api/slots/module"
	svc "slotfinder/internal/services/api/slots/service"
)

func main() {
	// logs go to stderr so stdout stays machine readable
	lo := logger.FromEnv()
	lo.Writer = os.Stderr
	lo.Service = "slotfinder-eval"
	logger.Init(lo)

	if err := config.LoadDotenv(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		w := perr.WireFrom(err)
		if w.Field != "" {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s (field %s)\n", w.Message, w.Field)
		} else {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", w.Message)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("slotfinder-eval", flag.ContinueOnError)
	var (
		in      = fs.String("in", "-", "path to a search request JSON file or '-' for stdin")
		tz      = fs.String("tz", "", "override the request timezone")
		limit   = fs.Int("limit", 0, "override the page size (0 keeps the request value)")
		pretty  = fs.Bool("pretty", true, "pretty-print JSON")
		timeout = fs.Duration("timeout", 10*time.Second, "abandon the search after this long")
	)
	if err := fs.Parse(args); err != nil {
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, "bad flags")
	}

	body, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	var req domain.SearchInput
	if err := json.Unmarshal(body, &req); err != nil {
		return perr.JSONErrf("invalid JSON: %v", err)
	}
	if *tz != "" {
		req.Timezone = *tz
	}
	if *limit > 0 {
		req.Limit = *limit
	}

	domain.RegisterValidators()
	if err := bind.Validate(req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	s := svc.New(slotsmod.FromConfig(config.New()).Limits, nil, nil)
	out, err := s.Search(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "read stdin")
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read %s", path)
	}
	return b, nil
}
