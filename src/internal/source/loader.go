package source

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/warninglists/src/internal/errors"
	"github.com/maksimkurb/warninglists/src/internal/hashing"
	"github.com/maksimkurb/warninglists/src/internal/log"
	"github.com/maksimkurb/warninglists/src/internal/utils"
	"github.com/maksimkurb/warninglists/src/internal/warninglist"
)

const listFileName = "list.json"

type LoadOptions struct {
	// SkipInvalid loads the remaining lists when some files are malformed.
	// The returned error still names every file that was skipped.
	SkipInvalid bool
}

// listFile mirrors list.json. Name and list must be present, an empty list
// is allowed.
type listFile struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Version            int      `json:"version" validate:"gte=0"`
	Type               string   `json:"type"`
	List               []string `json:"list" validate:"required"`
	MatchingAttributes []string `json:"matching_attributes"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// FileError describes a list file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ListFiles returns the sorted list.json paths below dir. Both dir/lists/*
// and dir/* are searched, so dir may be the dataset root or its lists
// directory.
func ListFiles(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.NewSourceError(fmt.Sprintf("cannot access lists directory %s", dir), err)
	}

	for _, pattern := range []string{
		filepath.Join(dir, "lists", "*", listFileName),
		filepath.Join(dir, "*", listFileName),
	} {
		files, err := filepath.Glob(pattern)
		if err != nil {
			return nil, errors.NewSourceError("invalid lists directory pattern", err)
		}
		if len(files) > 0 {
			sort.Strings(files)
			return files, nil
		}
	}
	return nil, nil
}

// LoadFile decodes and validates a single list.json.
func LoadFile(path string) (warninglist.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return warninglist.Definition{}, &FileError{Path: path, Err: err}
	}
	defer utils.CloseOrWarn(f)

	var raw listFile
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return warninglist.Definition{}, &FileError{Path: path, Err: errors.NewListError("malformed list file", err)}
	}
	if err := validate.Struct(raw); err != nil {
		return warninglist.Definition{}, &FileError{Path: path, Err: errors.NewListError(validationMessage(err), nil)}
	}

	def := warninglist.Definition{
		Name:               raw.Name,
		Description:        raw.Description,
		Version:            raw.Version,
		Type:               warninglist.ListType(raw.Type),
		List:               raw.List,
		MatchingAttributes: raw.MatchingAttributes,
	}
	if _, known := warninglist.ParseListType(raw.Type); !known {
		log.Debugf("List \"%s\" has unknown type %q, using substring matching", raw.Name, raw.Type)
	}
	return def, nil
}

// LoadDir loads every list below dir. Without SkipInvalid the first
// malformed file aborts the load.
func LoadDir(dir string, opts LoadOptions) ([]warninglist.Definition, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Warnf("No warning lists found in %s", dir)
		return nil, nil
	}

	defs := make([]warninglist.Definition, 0, len(files))
	var failed []error
	for _, path := range files {
		def, err := LoadFile(path)
		if err != nil {
			if !opts.SkipInvalid {
				return nil, errors.NewSourceError("failed to load warning lists", err)
			}
			log.Warnf("Skipping list file: %v", err)
			failed = append(failed, err)
			continue
		}
		log.Debugf("Loaded list \"%s\" (%d entries) from %s", def.Name, len(def.List), path)
		defs = append(defs, def)
	}

	log.Infof("Loaded %d warning lists from %s", len(defs), dir)
	if len(failed) > 0 {
		return defs, errors.NewSourceError(
			fmt.Sprintf("%d list file(s) skipped", len(failed)),
			stderrors.Join(failed...),
		)
	}
	return defs, nil
}

// Fingerprint identifies a set of definitions by name and version.
func Fingerprint(defs []warninglist.Definition) string {
	set := hashing.NewChecksumStringSet()
	for _, def := range defs {
		set.Put(def.Name + "@" + strconv.Itoa(def.Version))
	}
	sum, _ := set.GetChecksum()
	return sum
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field %s is required", e.Field())
	default:
		return fmt.Sprintf("field %s failed %s validation", e.Field(), e.Tag())
	}
}
