package parquet

import (
	"fmt"
	"strings"
)

const (
	DefaultPageBufferSize = 1 * 1024 * 1024
	DefaultSkipPageIndex  = false
)

// FileConfig carries configuration options for opening a parquet file.
//
// FileConfig implements FileOption so it can be passed directly wherever
// options are accepted, for example:
//
//	f, err := metadata.Decode(src, &parquet.FileConfig{SkipPageIndex: true})
type FileConfig struct {
	// SkipPageIndex leaves the page-index byte-range fields (offset index
	// and column index offsets and lengths) unset on every decoded column
	// chunk. The page index itself is never read or decoded, whatever this
	// is set to.
	SkipPageIndex bool
}

// DefaultFileConfig returns a new FileConfig initialized with defaults.
func DefaultFileConfig() *FileConfig {
	return &FileConfig{SkipPageIndex: DefaultSkipPageIndex}
}

// Apply applies the given list of options to c.
func (c *FileConfig) Apply(options ...FileOption) {
	for _, opt := range options {
		opt.ConfigureFile(c)
	}
}

// ConfigureFile applies configuration options from c to config.
func (c *FileConfig) ConfigureFile(config *FileConfig) {
	*config = FileConfig{SkipPageIndex: c.SkipPageIndex}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *FileConfig) Validate() error {
	return nil
}

// ReaderConfig carries configuration options for reading pages.
//
// ReaderConfig implements ReaderOption. page.NewIterator takes no options,
// and no function in this module reads a ReaderConfig.
type ReaderConfig struct {
	// PageBufferSize is a page buffer size hint in bytes. Validate requires
	// it to be positive; the page iterator does not read it.
	PageBufferSize int
}

// DefaultReaderConfig returns a new ReaderConfig initialized with defaults.
func DefaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{PageBufferSize: DefaultPageBufferSize}
}

// Apply applies the given list of options to c.
func (c *ReaderConfig) Apply(options ...ReaderOption) {
	for _, opt := range options {
		opt.ConfigureReader(c)
	}
}

// ConfigureReader applies configuration options from c to config.
func (c *ReaderConfig) ConfigureReader(config *ReaderConfig) {
	*config = ReaderConfig{
		PageBufferSize: coalesceInt(c.PageBufferSize, config.PageBufferSize),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *ReaderConfig) Validate() error {
	const baseName = "parquet.(*ReaderConfig)."
	return errorInvalidConfiguration(
		validatePositiveInt(baseName+"PageBufferSize", c.PageBufferSize),
	)
}

// FileOption is implemented by types that carry FileConfig options.
type FileOption interface {
	ConfigureFile(*FileConfig)
}

// ReaderOption is implemented by types that carry ReaderConfig options.
type ReaderOption interface {
	ConfigureReader(*ReaderConfig)
}

// SkipPageIndex is a file configuration option which, when set to true,
// leaves the page-index byte-range fields of every decoded column chunk
// unset.
//
// Defaults to false.
func SkipPageIndex(skip bool) FileOption {
	return fileOption(func(config *FileConfig) { config.SkipPageIndex = skip })
}

// PageBufferSize is a reader configuration option that sets
// ReaderConfig.PageBufferSize.
//
// Defaults to 1 MiB.
type PageBufferSize int

func (size PageBufferSize) ConfigureReader(config *ReaderConfig) {
	config.PageBufferSize = int(size)
}

type fileOption func(*FileConfig)

func (opt fileOption) ConfigureFile(config *FileConfig) { opt(config) }

type readerOption func(*ReaderConfig)

func (opt readerOption) ConfigureReader(config *ReaderConfig) { opt(config) }

func coalesceInt(i1, i2 int) int {
	if i1 != 0 {
		return i1
	}
	return i2
}

func validatePositiveInt(optionName string, optionValue int) error {
	if optionValue > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration
	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}
	if err != nil {
		return err
	}
	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}

var (
	_ FileOption   = (*FileConfig)(nil)
	_ ReaderOption = (*ReaderConfig)(nil)
	_ ReaderOption = PageBufferSize(0)
)
