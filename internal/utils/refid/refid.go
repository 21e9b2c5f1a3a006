// Package refid generates and validates the public reference IDs printed on
// receipts and status-lookup pages. A reference ID is distinct from the
// internal database key: it is short, human readable, and safe to read over
// the phone.
//
// Three formats exist:
//
//	date-based:  PREFIX-YYYYMMDD-XXXX (4 uppercase base-36 characters)
//	name-based:  PREFIX-AAAA-NNNN     (4-letter name stub, 4-digit number)
//	sequential:  PREFIX-NNNNNN        (zero-padded sequence number)
//
// Uniqueness is not guaranteed here; callers must check the store and
// regenerate on collision.
package refid

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/newstepsproject/backend/internal/apperrors"
)

// EntityType identifies one of the configured record kinds.
type EntityType string

const (
	Donation      EntityType = "DONATION"
	MoneyDonation EntityType = "MONEY_DONATION"
	ShoeRequest   EntityType = "SHOE_REQUEST"
	Order         EntityType = "ORDER"
	Volunteer     EntityType = "VOLUNTEER"
	Partnership   EntityType = "PARTNERSHIP"
	Contact       EntityType = "CONTACT"
)

// Format selects the shape of the ID body and suffix.
type Format string

const (
	FormatDateBased  Format = "date-based"
	FormatNameBased  Format = "name-based"
	FormatSequential Format = "sequential"
)

type entityConfig struct {
	Prefix      string
	Format      Format
	SuffixLen   int
	Description string
}

// configTable is the closed enumeration of entity types. Adding an entity
// type is a code change.
var configTable = map[EntityType]entityConfig{
	Donation:      {Prefix: "DON", Format: FormatDateBased, SuffixLen: 4, Description: "shoe donation"},
	MoneyDonation: {Prefix: "DM", Format: FormatNameBased, SuffixLen: 4, Description: "money donation"},
	ShoeRequest:   {Prefix: "REQ", Format: FormatDateBased, SuffixLen: 4, Description: "shoe request"},
	Order:         {Prefix: "ORD", Format: FormatDateBased, SuffixLen: 4, Description: "order"},
	Volunteer:     {Prefix: "VOL", Format: FormatDateBased, SuffixLen: 4, Description: "volunteer submission"},
	Partnership:   {Prefix: "PAR", Format: FormatDateBased, SuffixLen: 4, Description: "partnership inquiry"},
	Contact:       {Prefix: "CON", Format: FormatDateBased, SuffixLen: 4, Description: "contact form submission"},
}

// sequentialWidth is the zero-pad width for the sequential format. No
// configured entity uses it today, but the format is part of the public ID
// grammar and stays supported.
const sequentialWidth = 6

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Options carries the format-dependent inputs to Generate. Exactly one field
// is consulted per format: Name for name-based, SequenceNumber for
// sequential. Date-based IDs need neither.
type Options struct {
	Name           string
	SequenceNumber *int
}

// Generate produces a new reference ID for the given entity type. It fails
// with apperrors.ErrConfiguration for unknown entity types and with
// apperrors.ErrValidation when the format's required option is missing. It
// never checks uniqueness.
func Generate(entityType EntityType, opts Options) (string, error) {
	cfg, ok := configTable[entityType]
	if !ok {
		return "", fmt.Errorf("unknown entity type %q: %w", entityType, apperrors.ErrConfiguration)
	}
	return formatID(cfg, opts)
}

// formatID renders an ID for the given config. Split from Generate so each
// format, including ones no configured entity currently uses, can be
// exercised in isolation.
func formatID(cfg entityConfig, opts Options) (string, error) {
	switch cfg.Format {
	case FormatDateBased:
		suffix, err := randomBase36(cfg.SuffixLen)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-%s-%s", cfg.Prefix, time.Now().Format("20060102"), suffix), nil

	case FormatNameBased:
		if strings.TrimSpace(opts.Name) == "" {
			return "", fmt.Errorf("name is required for name-based reference IDs: %w", apperrors.ErrValidation)
		}
		suffix, err := randomDigits(cfg.SuffixLen)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-%s-%s", cfg.Prefix, nameStub(opts.Name), suffix), nil

	case FormatSequential:
		if opts.SequenceNumber == nil {
			return "", fmt.Errorf("sequence number is required for sequential reference IDs: %w", apperrors.ErrValidation)
		}
		return fmt.Sprintf("%s-%0*d", cfg.Prefix, sequentialWidth, *opts.SequenceNumber), nil

	default:
		return "", fmt.Errorf("unknown format %q for prefix %q: %w", cfg.Format, cfg.Prefix, apperrors.ErrConfiguration)
	}
}

// Validate reports whether id structurally matches the configured format for
// entityType. It never errors: it is meant to classify arbitrary strings.
// Uniqueness is the caller's responsibility.
func Validate(id string, entityType EntityType) bool {
	if _, ok := configTable[entityType]; !ok {
		return false
	}
	return patterns[entityType].MatchString(id)
}

// ParseResult is the structured decomposition of a reference ID.
type ParseResult struct {
	EntityType     EntityType
	Prefix         string
	Date           string // YYYYMMDD, date-based only
	NamePrefix     string // 4-letter stub, name-based only
	SequenceNumber int    // sequential only
	RandomSuffix   string // date/name-based only
	IsValid        bool
}

// Parse infers the entity type from the prefix and decomposes id. It is
// total: any input yields a result, with IsValid=false when no configured
// prefix and structure match.
func Parse(id string) ParseResult {
	for entityType, cfg := range configTable {
		if !strings.HasPrefix(id, cfg.Prefix+"-") {
			continue
		}
		if !patterns[entityType].MatchString(id) {
			continue
		}

		res := ParseResult{EntityType: entityType, Prefix: cfg.Prefix, IsValid: true}
		rest := strings.TrimPrefix(id, cfg.Prefix+"-")
		switch cfg.Format {
		case FormatDateBased:
			res.Date = rest[:8]
			res.RandomSuffix = rest[9:]
		case FormatNameBased:
			res.NamePrefix = rest[:4]
			res.RandomSuffix = rest[5:]
		case FormatSequential:
			fmt.Sscanf(rest, "%d", &res.SequenceNumber)
		}
		return res
	}
	return ParseResult{IsValid: false}
}

// MigrateLegacy maps pre-launch identifiers onto the current scheme. IDs that
// already validate for any entity type pass through unchanged. The one
// recognized legacy pattern ("DS-" donation IDs) gets a brand-new donation
// ID; callers retain the old value in the entity's oldId field. Anything else
// is returned as-is.
func MigrateLegacy(id string) string {
	if Parse(id).IsValid {
		return id
	}
	if strings.HasPrefix(id, "DS-") {
		fresh, err := Generate(Donation, Options{})
		if err != nil {
			return id
		}
		return fresh
	}
	return id
}

// nameStub takes the first 4 letters of name, uppercased, right-padded with
// X. Digits and punctuation are dropped so the stub always matches the
// [A-Z]{4} segment of the public grammar.
func nameStub(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() == 4 {
				break
			}
		}
	}
	stub := b.String()
	for len(stub) < 4 {
		stub += "X"
	}
	return stub
}

// patterns holds one compiled structure check per entity type.
var patterns = func() map[EntityType]*regexp.Regexp {
	m := make(map[EntityType]*regexp.Regexp, len(configTable))
	for entityType, cfg := range configTable {
		switch cfg.Format {
		case FormatDateBased:
			m[entityType] = regexp.MustCompile(fmt.Sprintf(`^%s-\d{8}-[A-Z0-9]{%d}$`, cfg.Prefix, cfg.SuffixLen))
		case FormatNameBased:
			m[entityType] = regexp.MustCompile(fmt.Sprintf(`^%s-[A-Z]{4}-\d{%d}$`, cfg.Prefix, cfg.SuffixLen))
		case FormatSequential:
			m[entityType] = regexp.MustCompile(fmt.Sprintf(`^%s-\d+$`, cfg.Prefix))
		}
	}
	return m
}()

func randomBase36(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = base36Alphabet[idx.Int64()]
	}
	return string(out), nil
}

func randomDigits(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(10)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = byte('0' + idx.Int64())
	}
	return string(out), nil
}
