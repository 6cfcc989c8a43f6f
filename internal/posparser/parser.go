// =============================================================================
// POS Report Processor - Export File Parser
// =============================================================================
//
// Parses a single point-of-sale export file. The terminal writes
// tab-delimited text with an .xls extension: two rows of report preamble,
// the header row, then the data rows. Files from older firmware are GBK
// encoded, newer ones UTF-8, so decoding tries a primary encoding and
// falls back to a secondary one before giving up.
//
// =============================================================================

package posparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/pos-report-processor/internal/config"
)

// FileData is the parsed content of one export file.
type FileData struct {
	// Headers are the column headers from the configured header row.
	Headers []string

	// Rows are the data rows as header -> value maps. Rows shorter than
	// the header are padded with empty strings.
	Rows []map[string]string

	// SourceFile is the path the data came from.
	SourceFile string

	// Encoding is the encoding that actually decoded the file.
	Encoding string
}

// RowCount returns the number of data rows.
func (d *FileData) RowCount() int {
	return len(d.Rows)
}

// Parse reads one export file using the given settings. It returns an
// error when the file cannot be decoded with either configured encoding or
// is too short to contain the header row; callers treat that as a per-file
// warning, not a fatal condition.
func Parse(filePath string, settings config.ParseSettings) (*FileData, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	text, encName, err := decodeWithFallback(raw, settings.Encoding, settings.FallbackEncoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(strings.NewReader(text))
	configureReader(reader, settings.Delimiter)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Errorf("reading delimited text: %w", err)
	}

	// csv.Reader drops fully blank lines, so the header offset counts
	// non-blank rows only.
	if len(allRows) < settings.HeaderRow {
		return nil, errors.Errorf("file has %d row(s), header expected at row %d", len(allRows), settings.HeaderRow)
	}

	headers := cleanHeaders(allRows[settings.HeaderRow-1])

	dataRows := make([]map[string]string, 0, len(allRows)-settings.HeaderRow)
	for _, row := range allRows[settings.HeaderRow:] {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rowMap[header] = strings.TrimSpace(row[i])
			} else {
				rowMap[header] = ""
			}
		}
		dataRows = append(dataRows, rowMap)
	}

	return &FileData{
		Headers:    headers,
		Rows:       dataRows,
		SourceFile: filePath,
		Encoding:   encName,
	}, nil
}

// configureReader sets up the csv.Reader for the export format.
func configureReader(reader *csv.Reader, delimiter string) {
	switch delimiter {
	case "", "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		reader.Comma = rune(delimiter[0])
	}

	// Exports routinely have ragged rows and stray quotes. TrimLeadingSpace
	// must stay off: with a tab delimiter it would swallow empty cells and
	// shift every following field left. Cells are trimmed individually
	// after parsing.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
}

// cleanHeaders trims headers and names any blank ones by position.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}
	return cleaned
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// ENCODING HANDLING
// =============================================================================

// decodeWithFallback decodes raw bytes with the primary encoding, then the
// fallback. It returns the decoded text and the name of the encoding that
// succeeded. Both failing is the per-file skip condition.
func decodeWithFallback(raw []byte, primary, fallback string) (string, string, error) {
	text, primaryErr := decode(raw, primary)
	if primaryErr == nil {
		return text, primary, nil
	}

	text, fallbackErr := decode(raw, fallback)
	if fallbackErr == nil {
		return text, fallback, nil
	}

	return "", "", errors.Errorf("decode failed as %s (%s) and as %s (%s)",
		primary, primaryErr, fallback, fallbackErr)
}

// decode decodes raw bytes as the named encoding, treating any replacement
// rune in the output as a decode failure. The x/text decoders substitute
// U+FFFD for byte sequences that are invalid in the source charset, which
// is exactly the signal that the wrong encoding was tried.
func decode(raw []byte, name string) (string, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}

	if enc == nil { // utf-8
		if !utf8.Valid(raw) {
			return "", errors.New("invalid UTF-8 byte sequence")
		}
		return string(stripBOM(raw)), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", errors.Errorf("decoding as %s: %w", name, err)
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", errors.Errorf("byte sequence invalid in %s", name)
	}
	return string(decoded), nil
}

// lookupEncoding resolves an encoding name. A nil encoding with nil error
// means plain UTF-8, which needs no transform.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "gbk", "gb2312":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	case "big5":
		return traditionalchinese.Big5, nil
	case "windows-1252", "cp1252", "latin-1", "iso-8859-1":
		return charmap.Windows1252, nil
	default:
		return nil, errors.Errorf("unsupported encoding %q", name)
	}
}

// stripBOM removes a leading UTF-8 byte order mark if present.
func stripBOM(raw []byte) []byte {
	return bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
}
