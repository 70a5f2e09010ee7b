// Command genlunisolar reads the lunisolar almanac (one YAML record per
// year: new year's date, leap month and month lengths) and generates the Go
// source file holding the packed tables used by package lunisolar.
//
// The almanac is read from a local file or downloaded over HTTPS from an
// allowed host. Every record is validated before anything is written, and
// all problems are reported together.
//
// Usage:
//
//	go run ./cmd/genlunisolar -input cmd/genlunisolar/almanac.yaml -output dataset_data.go
package main

import (
	"context"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	minExpectedYears = 100

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum almanac size to prevent memory exhaustion.
	maxAlmanacSize = 1 * 1024 * 1024

	userAgent = "lunisolar-generator/1.0 (https://github.com/rabitt1ove/lunisolar)"

	dateLayout = "2006-01-02"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedHosts is the set of hostnames an almanac may be downloaded from.
var allowedHosts = map[string]bool{
	"raw.githubusercontent.com":  true,
	"gist.githubusercontent.com": true,
}

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("cmd", "genlunisolar").Logger()

type almanac struct {
	Years []yearRecord `yaml:"years"`
}

type yearRecord struct {
	Year      int    `yaml:"year"`
	NewYear   string `yaml:"new_year"`
	LeapMonth int    `yaml:"leap_month"`
	MonthDays []int  `yaml:"month_days"`
}

// yearData is a validated record reduced to the packed table values.
type yearData struct {
	year      int
	bigMonths uint16
	leapMonth uint8
	offset    uint8
}

func main() {
	input := flag.String("input", "almanac.yaml", "almanac file path or https URL")
	output := flag.String("output", "dataset_data.go", "output file path")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	if lvl, err := zerolog.ParseLevel(*level); err == nil {
		logger = logger.Level(lvl)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client := &http.Client{Timeout: httpTimeout}

	body, err := readAlmanac(ctx, client, *input)
	if err != nil {
		logger.Fatal().Err(err).Str("input", *input).Msg("failed to read almanac")
	}

	records, err := parseAlmanac(body)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse almanac")
	}

	if len(records) < minExpectedYears {
		logger.Fatal().Int("records", len(records)).Int("min", minExpectedYears).Msg("validation failed: too few years")
	}

	data, err := validate(records)
	if err != nil {
		logger.Fatal().Err(err).Msg("validation failed")
	}

	src, err := generate(data)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to generate source")
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		logger.Fatal().Err(err).Msg("failed to write output")
	}

	logger.Info().Int("records", len(data)).
		Int("first", data[0].year).
		Int("last", data[len(data)-1].year).
		Str("output", *output).
		Msg("wrote dataset")
}

// readAlmanac reads input as an https URL or a local file.
func readAlmanac(ctx context.Context, client *http.Client, input string) ([]byte, error) {
	if strings.Contains(input, "://") {
		if err := validateSourceURL(input); err != nil {
			return nil, err
		}
		return fetchWithRetry(ctx, client, input)
	}
	logger.Info().Str("path", input).Msg("reading almanac")
	return os.ReadFile(input)
}

// validateSourceURL checks that a URL points to an allowed host (SSRF prevention).
func validateSourceURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchWithRetry fetches a URL with exponential backoff retries.
func fetchWithRetry(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			logger.Warn().Dur("delay", delay).Int("attempt", attempt+1).Int("max", maxRetries).Msg("retrying")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		logger.Info().Str("url", url).Msg("fetching almanac")
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			logger.Warn().Err(err).Msg("fetch failed")
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			logger.Warn().Int("status", resp.StatusCode).Msg("fetch failed (retryable)")
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxAlmanacSize+1))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("GET %s: reading body: %w", url, err)
		}
		if len(body) > maxAlmanacSize {
			return nil, fmt.Errorf("GET %s: almanac exceeds %d bytes", url, maxAlmanacSize)
		}
		return body, nil
	}
	return nil, lastErr
}

// parseAlmanac decodes the YAML almanac.
func parseAlmanac(body []byte) ([]yearRecord, error) {
	var a almanac
	if err := yaml.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if len(a.Years) == 0 {
		return nil, fmt.Errorf("no years in almanac")
	}
	return a.Years, nil
}

// validate checks every record and the chain between consecutive new years,
// collecting all failures, and packs the records into table values.
func validate(records []yearRecord) ([]yearData, error) {
	var errs errors.M
	data := make([]yearData, 0, len(records))
	newYears := make([]time.Time, len(records))

	if len(records) > 0 && records[0].Year%2 == 0 {
		errs.Append(fmt.Errorf("first year %d must be odd to pack leap months", records[0].Year))
	}
	for i, r := range records {
		if i > 0 && r.Year != records[i-1].Year+1 {
			errs.Append(fmt.Errorf("record %d: year %d does not follow %d", i, r.Year, records[i-1].Year))
		}

		d, ny, err := packYear(r)
		if err != nil {
			errs.Append(err)
			continue
		}
		newYears[i] = ny
		data = append(data, d)
	}

	for i := 1; i < len(records); i++ {
		prev, cur := newYears[i-1], newYears[i]
		if prev.IsZero() || cur.IsZero() {
			continue
		}
		if want := prev.AddDate(0, 0, sum(records[i-1].MonthDays)); !want.Equal(cur) {
			errs.Append(fmt.Errorf("year %d: new year %s, but year %d ends on %s",
				records[i].Year, cur.Format(dateLayout), records[i-1].Year, want.AddDate(0, 0, -1).Format(dateLayout)))
		}
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// packYear validates one record and encodes it.
func packYear(r yearRecord) (yearData, time.Time, error) {
	var errs errors.M
	if r.LeapMonth < 0 || r.LeapMonth > 12 {
		errs.Append(fmt.Errorf("year %d: leap month %d not in 0..12", r.Year, r.LeapMonth))
	}
	want := 12
	if r.LeapMonth > 0 {
		want = 13
	}
	if len(r.MonthDays) != want {
		errs.Append(fmt.Errorf("year %d: %d month lengths, want %d", r.Year, len(r.MonthDays), want))
	}
	var mask uint16
	for i, n := range r.MonthDays {
		if i >= 16 {
			break
		}
		switch n {
		case 30:
			mask |= 0x8000 >> i
		case 29:
		default:
			errs.Append(fmt.Errorf("year %d: month slot %d has %d days", r.Year, i+1, n))
		}
	}
	ny, err := time.Parse(dateLayout, r.NewYear)
	if err != nil {
		errs.Append(fmt.Errorf("year %d: new year %q: %w", r.Year, r.NewYear, err))
	} else if ny.Year() != r.Year {
		errs.Append(fmt.Errorf("year %d: new year %s falls in another year", r.Year, r.NewYear))
	}
	if err := errs.Err(); err != nil {
		return yearData{}, time.Time{}, err
	}
	return yearData{
		year:      r.Year,
		bigMonths: mask,
		leapMonth: uint8(r.LeapMonth),
		offset:    uint8(ny.YearDay() - 1),
	}, ny, nil
}

func sum(ns []int) int {
	total := 0
	for _, n := range ns {
		total += n
	}
	return total
}

// generate produces a formatted Go source file containing the packed tables.
func generate(data []yearData) ([]byte, error) {
	first, last := data[0].year, data[len(data)-1].year

	big := make([]string, len(data))
	offsets := make([]string, len(data))
	for i, d := range data {
		big[i] = fmt.Sprintf("0x%04x", d.bigMonths)
		offsets[i] = fmt.Sprintf("%d", d.offset)
	}
	var leap []string
	for i := 0; i < len(data); i += 2 {
		b := data[i].leapMonth << 4
		if i+1 < len(data) {
			b |= data[i+1].leapMonth
		}
		leap = append(leap, fmt.Sprintf("0x%02x", b))
	}

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genlunisolar; DO NOT EDIT.\n\n")
	b.WriteString("package lunisolar\n\n")

	fmt.Fprintf(&b, "// bigMonths has one entry per year from %d to %d.\n", first, last)
	writeTable(&b, "bigMonths", "uint16", big, first, last, 1)
	b.WriteString("\n// leapMonths packs two years per byte, the odd year in the high nibble.\n")
	writeTable(&b, "leapMonths", "uint8", leap, first, last, 2)
	fmt.Fprintf(&b, "\n// newYearOffsets has one entry per year from %d to %d.\n", first, last)
	writeTable(&b, "newYearOffsets", "uint8", offsets, first, last, 1)

	return format.Source([]byte(b.String()))
}

// writeTable writes values as an array literal, one decade per line.
func writeTable(b *strings.Builder, name, typ string, values []string, first, last, yearsPerValue int) {
	perLine := 10 / yearsPerValue
	fmt.Fprintf(b, "var %s = [...]%s{\n", name, typ)
	for i := 0; i < len(values); i += perLine {
		row := values[i:min(i+perLine, len(values))]
		from := first + i*yearsPerValue
		to := min(from+len(row)*yearsPerValue-1, last)
		if from == to {
			fmt.Fprintf(b, "\t// %d\n", from)
		} else {
			fmt.Fprintf(b, "\t// %d-%d\n", from, to)
		}
		fmt.Fprintf(b, "\t%s,\n", strings.Join(row, ", "))
	}
	b.WriteString("}\n")
}
