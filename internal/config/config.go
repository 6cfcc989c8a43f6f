// =============================================================================
// POS Report Processor - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. The configuration
// covers input discovery, parse settings (delimiter, header offset,
// encodings), the dish-name cleaning rule set, column roles, and output
// sheet names. Every field has a default reproducing the stock daily-report
// layout, so the tool runs without any configuration file at all.
//
// =============================================================================

package config

import (
	"os"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration.
type Config struct {
	// InputDir is the directory scanned for POS export files.
	// Usually supplied on the command line instead.
	InputDir string `yaml:"input_dir"`

	// OutputFile is the path of the generated workbook. When empty the
	// path is derived from OutputNamePattern inside the input directory.
	OutputFile string `yaml:"output_file"`

	// OutputNamePattern names the workbook when no explicit output path is
	// given. Placeholders:
	//   {timestamp} - run start time (YYYYMMDD_HHMMSS)
	//   {uuid}      - a random UUID
	// Default: "Daily_Report.xlsx"
	OutputNamePattern string `yaml:"output_name_pattern"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	Parse    ParseSettings `yaml:"parse_settings"`
	Cleaning CleaningRules `yaml:"cleaning_rules"`
	Columns  ColumnRoles   `yaml:"columns"`
	Sheets   SheetNames    `yaml:"sheets"`
}

// ParseSettings configures how individual export files are read.
type ParseSettings struct {
	// FilePatterns are glob patterns matched against file names in the
	// input directory. The POS terminal exports tab-delimited text with an
	// .xls extension, hence the default ["*.xls"].
	FilePatterns []string `yaml:"file_patterns"`

	// Delimiter separates fields. Accepts a literal character or the
	// aliases "tab", "pipe", "semicolon". Default: tab.
	Delimiter string `yaml:"delimiter"`

	// HeaderRow is the 1-based row holding the column headers. Rows above
	// it are report preamble and are discarded. Default: 3.
	HeaderRow int `yaml:"header_row"`

	// Encoding is tried first when decoding a file. Default: "gbk".
	Encoding string `yaml:"encoding"`

	// FallbackEncoding is tried when the primary encoding fails.
	// Default: "utf-8".
	FallbackEncoding string `yaml:"fallback_encoding"`
}

// CleaningRules is the explicit rule set applied to the dish-name column.
// Rules run in the order listed here; each stage can be disabled.
type CleaningRules struct {
	// StripChars are removed outright before anything else.
	StripChars string `yaml:"strip_chars"`

	// Replacements are literal substitutions applied in order.
	Replacements []Replacement `yaml:"replacements"`

	// StripDigits removes all decimal digits.
	StripDigits *bool `yaml:"strip_digits"`

	// Uppercase converts the result to upper case.
	Uppercase *bool `yaml:"uppercase"`

	// CollapseWhitespace trims and collapses whitespace runs to one space.
	CollapseWhitespace *bool `yaml:"collapse_whitespace"`
}

// Replacement is a single literal find/replace rule.
type Replacement struct {
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

// ColumnRoles maps the column headers of the export format onto the roles
// the pipeline needs: grouping keys, quantities, fill-down columns.
type ColumnRoles struct {
	// TransactionKey identifies a receipt; the summary sheet has one row
	// per distinct value. Default: "OR No".
	TransactionKey string `yaml:"transaction_key"`

	// DishName is the column the cleaning rules operate on.
	DishName string `yaml:"dish_name"`

	// Quantity is summed per dish for the breakdown sheet.
	Quantity string `yaml:"quantity"`

	// Amount is an optional monetary column also summed per dish.
	// Empty means the export carries no per-line amount.
	Amount string `yaml:"amount"`

	// ForwardFill lists columns whose blank continuation cells (merged
	// cells in the source report) inherit the value above.
	ForwardFill []string `yaml:"forward_fill"`

	// Drop lists junk columns removed from the merged table.
	Drop []string `yaml:"drop"`

	// Date is the source date column, DateTime the derived column
	// inserted after it. DateLayouts are tried in order when parsing.
	Date        string   `yaml:"date"`
	DateTime    string   `yaml:"datetime"`
	DateLayouts []string `yaml:"date_layouts"`

	// DishLevel lists the columns that only make sense per line item and
	// are therefore dropped from the transaction summary sheet.
	DishLevel []string `yaml:"dish_level"`
}

// SheetNames names the three sheets of the output workbook.
type SheetNames struct {
	Detail    string `yaml:"detail"`
	Summary   string `yaml:"summary"`
	Breakdown string `yaml:"breakdown"`
}

// Load reads the configuration from a YAML file and applies defaults.
// A missing file is not an error: the built-in defaults are returned, so
// the tool works out of the box for the stock report layout.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Errorf("parsing config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the built-in configuration for the stock export layout.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func boolPtr(b bool) *bool { return &b }

// applyDefaults fills every unset field with its default value.
func applyDefaults(cfg *Config) {
	if cfg.OutputNamePattern == "" {
		cfg.OutputNamePattern = "Daily_Report.xlsx"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	// Parse settings.
	if len(cfg.Parse.FilePatterns) == 0 {
		cfg.Parse.FilePatterns = []string{"*.xls"}
	}
	if cfg.Parse.Delimiter == "" {
		cfg.Parse.Delimiter = "tab"
	}
	if cfg.Parse.HeaderRow == 0 {
		cfg.Parse.HeaderRow = 3
	}
	if cfg.Parse.Encoding == "" {
		cfg.Parse.Encoding = "gbk"
	}
	if cfg.Parse.FallbackEncoding == "" {
		cfg.Parse.FallbackEncoding = "utf-8"
	}

	// Cleaning rules. The defaults reproduce the historical cleanup the
	// back office applied by hand: strip bracketed portion counts, expand
	// shorthand, drop unit suffixes, normalize case and spacing.
	if cfg.Cleaning.StripChars == "" && cfg.Cleaning.Replacements == nil {
		cfg.Cleaning.StripChars = "().@"
		cfg.Cleaning.Replacements = []Replacement{
			{Find: "W/", Replace: "WITH"},
			{Find: "&", Replace: "AND"},
			{Find: " WIT ", Replace: " WITH "},
			// The terminal prints line breaks inside dish names as the
			// literal two-character marker, not a real newline.
			{Find: `\n`, Replace: " "},
			{Find: "PCS", Replace: ""},
		}
	}
	if cfg.Cleaning.StripDigits == nil {
		cfg.Cleaning.StripDigits = boolPtr(true)
	}
	if cfg.Cleaning.Uppercase == nil {
		cfg.Cleaning.Uppercase = boolPtr(true)
	}
	if cfg.Cleaning.CollapseWhitespace == nil {
		cfg.Cleaning.CollapseWhitespace = boolPtr(true)
	}

	// Column roles.
	if cfg.Columns.TransactionKey == "" {
		cfg.Columns.TransactionKey = "OR No"
	}
	if cfg.Columns.DishName == "" {
		cfg.Columns.DishName = "Dishes"
	}
	if cfg.Columns.Quantity == "" {
		cfg.Columns.Quantity = "Dish Quantities"
	}
	if cfg.Columns.ForwardFill == nil {
		cfg.Columns.ForwardFill = []string{"Date", "POS Name", "Cashier Name", "Transaction No"}
	}
	if cfg.Columns.Drop == nil {
		cfg.Columns.Drop = []string{"No data found"}
	}
	if cfg.Columns.Date == "" {
		cfg.Columns.Date = "Date"
	}
	if cfg.Columns.DateTime == "" {
		cfg.Columns.DateTime = "DateTime"
	}
	if len(cfg.Columns.DateLayouts) == 0 {
		cfg.Columns.DateLayouts = []string{
			"2006-01-02 15:04:05",
			"2006-01-02 15:04",
			"2006/01/02 15:04:05",
			"2006-01-02",
			"2006/01/02",
			"01/02/2006 15:04",
			"01/02/2006",
		}
	}
	if cfg.Columns.DishLevel == nil {
		cfg.Columns.DishLevel = []string{cfg.Columns.DishName, cfg.Columns.Quantity}
	}

	// Sheet names.
	if cfg.Sheets.Detail == "" {
		cfg.Sheets.Detail = "DailyReport"
	}
	if cfg.Sheets.Summary == "" {
		cfg.Sheets.Summary = "Transactions"
	}
	if cfg.Sheets.Breakdown == "" {
		cfg.Sheets.Breakdown = "Dishes"
	}
}
