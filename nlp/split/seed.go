package split

import (
	"fmt"
	"hash/fnv"
)

// SeedMode selects how the per-language shuffle seed derives from the base seed
type SeedMode string

const (
	// SEED_FIXED gives every language the base seed
	SEED_FIXED SeedMode = "fixed"
	// SEED_LANG mixes a hash of the language code into the base seed
	SEED_LANG SeedMode = "lang"
)

func ParseSeedMode(s string) (SeedMode, error) {
	switch mode := SeedMode(s); mode {
	case SEED_FIXED, SEED_LANG:
		return mode, nil
	case "":
		return SEED_FIXED, nil
	default:
		return "", fmt.Errorf("unknown seed mode %q (expected %s or %s)", s, SEED_FIXED, SEED_LANG)
	}
}

// LanguageSeed returns the shuffle seed of lang. It depends only on its
// arguments, never on the order in which languages are processed.
func LanguageSeed(base int64, lang string, mode SeedMode) int64 {
	if mode != SEED_LANG {
		return base
	}
	h := fnv.New64a()
	h.Write([]byte(lang))
	return base ^ int64(h.Sum64())
}

// Mode selects what unit is shuffled and cut
type Mode string

const (
	// LEMMA_SPLIT keeps all records of a lemma in one partition
	LEMMA_SPLIT Mode = "lemma"
	// FORM_SPLIT cuts individual records
	FORM_SPLIT Mode = "form"
)

func ParseMode(s string) (Mode, error) {
	switch mode := Mode(s); mode {
	case LEMMA_SPLIT, FORM_SPLIT:
		return mode, nil
	case "":
		return LEMMA_SPLIT, nil
	default:
		return "", fmt.Errorf("unknown split mode %q (expected %s or %s)", s, LEMMA_SPLIT, FORM_SPLIT)
	}
}
