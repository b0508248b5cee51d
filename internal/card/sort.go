package card

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
)

// colorRank is the category a face sorts under. Comparison is plain integer
// order.
type colorRank int

const (
	rankTrueColorless colorRank = iota
	rankWhite
	rankBlue
	rankBlack
	rankRed
	rankGreen
	rankGold
	rankHybrid
	rankArtifact
	rankNonbasicLand
	rankBasicLand
)

var colorRanks = map[string]colorRank{
	"W": rankWhite,
	"U": rankBlue,
	"B": rankBlack,
	"R": rankRed,
	"G": rankGreen,
}

var hybridPair = regexp.MustCompile(`\{[WUBRG]/[WUBRG]\}`)

// sortKey is the composite ordering key of one face. Within one rank the
// secondary key is the land index for basic lands and the front face's
// display name for everything else; the face index keeps a back face behind
// its front.
type sortKey struct {
	rank      colorRank
	landIndex int
	name      string
	faceIndex int
}

func (k sortKey) less(other sortKey) bool {
	if k.rank != other.rank {
		return k.rank < other.rank
	}
	if k.rank == rankBasicLand {
		if k.landIndex != other.landIndex {
			return k.landIndex < other.landIndex
		}
	} else if k.name != other.name {
		return k.name < other.name
	}
	return k.faceIndex < other.faceIndex
}

// keyOf derives the sort key of face within the whole collection; back faces
// borrow their front face's display name.
func keyOf(faces []*Face, f *Face, logger *log.Logger) (sortKey, error) {
	key := sortKey{}
	if len(f.Names) > 0 {
		frontName := f.Names[0]
		for i, n := range f.Names {
			if n == f.Name {
				key.faceIndex = i
				break
			}
		}
		front := findByName(faces, frontName)
		if front == nil {
			return key, fmt.Errorf("front face of %s not found", frontName)
		}
		key.name = front.DisplayName()
	} else {
		key.name = f.DisplayName()
	}
	switch {
	case len(f.Colors) == 1:
		key.rank = colorRanks[f.Colors[0]]
	case len(f.Colors) > 1:
		if hybridPair.MatchString(f.ManaCost) {
			key.rank = rankHybrid
		} else {
			key.rank = rankGold
		}
	case f.HasType("Artifact"):
		key.rank = rankArtifact
	case f.HasType("Land"):
		if f.HasSupertype("Basic") {
			key.rank = rankBasicLand
			key.landIndex = basicLandIndex(f, logger)
		} else {
			key.rank = rankNonbasicLand
		}
	default:
		key.rank = rankTrueColorless
	}
	return key, nil
}

// basicLandIndex orders basic lands by the canonical land sequence; a basic
// with no subtype (Wastes) comes first, unknown subtypes last.
func basicLandIndex(f *Face, logger *log.Logger) int {
	if len(f.Subtypes) == 0 {
		return -1
	}
	for i, lt := range BasicLandTypes {
		if lt.Subtype == f.Subtypes[0] {
			return i
		}
	}
	logger.Warn("unknown basic land type, ordering after known basics", "card", f.Name, "subtype", f.Subtypes[0])
	return len(BasicLandTypes)
}

func findByName(faces []*Face, name string) *Face {
	for _, f := range faces {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// SortAndNumber imposes the canonical card order on the collection and
// assigns display numbers, pairing a transform card's faces as "Na"/"Nb".
func SortAndNumber(faces []*Face, logger *log.Logger) error {
	keys := make(map[*Face]sortKey, len(faces))
	for _, f := range faces {
		key, err := keyOf(faces, f, logger)
		if err != nil {
			return err
		}
		keys[f] = key
	}
	sort.SliceStable(faces, func(i, j int) bool {
		return keys[faces[i]].less(keys[faces[j]])
	})
	n := 0
	for _, f := range faces {
		if f.Layout == "transform" {
			if f.Name == f.Names[0] {
				n++
				f.Number = fmt.Sprintf("%da", n)
			} else {
				f.Number = fmt.Sprintf("%db", n)
			}
		} else {
			n++
			f.Number = strconv.Itoa(n)
		}
	}
	return nil
}
