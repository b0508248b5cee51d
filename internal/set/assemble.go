package set

import (
	"archive/zip"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/msejson/internal/card"
	"github.com/arcanaland/msejson/internal/mana"
	"github.com/arcanaland/msejson/internal/markup"
	"github.com/arcanaland/msejson/internal/mse"
	"github.com/arcanaland/msejson/internal/typeline"
)

// Options configures one conversion run.
type Options struct {
	// SetCode overrides the archive's own set code.
	SetCode string
	// SetVersion stamps meta.setVersion when non-empty.
	SetVersion string
	// Tables are the stylesheet/watermark lookup tables; zero value means
	// the builtins.
	Tables Tables
	// Logger receives skip notices and warnings.
	Logger *log.Logger
	// Now supplies the metadata date; nil means time.Now.
	Now func() time.Time
}

// Convert turns a set archive into a complete ordered set record. The
// conversion is fail-fast: the first card that cannot be assembled aborts
// the run with an error naming the card.
func Convert(archive *zip.Reader, opts Options) (*Set, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Tables.Stylesheets == nil {
		opts.Tables = DefaultTables()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	text, err := mse.ReadSetData(archive)
	if err != nil {
		return nil, err
	}
	data, err := mse.Parse(text)
	if err != nil {
		return nil, err
	}
	infoBlock, err := data.One("set info")
	if err != nil {
		return nil, err
	}
	info, err := mse.Parse(infoBlock)
	if err != nil {
		return nil, err
	}

	code := opts.SetCode
	if code == "" && info.Has("set code") {
		if code, err = info.One("set code"); err != nil {
			return nil, err
		}
	}
	result := &Set{
		Code:   code,
		Custom: true,
		Meta: Meta{
			Date:       opts.Now().UTC().Format("2006-01-02"),
			Version:    schemaVersion,
			SetVersion: opts.SetVersion,
		},
	}
	if info.Has("title") {
		if result.Name, err = info.One("title"); err != nil {
			return nil, err
		}
	}

	records := make([]*mse.Record, 0, len(data.Get("card")))
	for _, block := range data.Get("card") {
		rec, err := mse.Parse(block)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	sort.SliceStable(records, func(i, j int) bool {
		return rawNameKey(records[i]) < rawNameKey(records[j])
	})

	a := &assembler{data: data, info: info, tables: opts.Tables, logger: opts.Logger}
	var faces []*card.Face
	for _, rec := range records {
		built, err := a.card(rec)
		if err != nil {
			return nil, err
		}
		faces = append(faces, built...)
	}

	if err := card.SortAndNumber(faces, opts.Logger); err != nil {
		return nil, err
	}
	result.Cards = faces
	result.BaseSetSize = len(faces)
	result.TotalSetSize = len(faces)
	return result, nil
}

func rawNameKey(rec *mse.Record) string {
	return strings.Join(rec.Get("name"), "\x00")
}

type assembler struct {
	data   *mse.Record
	info   *mse.Record
	tables Tables
	logger *log.Logger
}

// card assembles the faces of one raw card block. Tokens and emblems yield
// no faces and no error; any failure is logged and wrapped with the card
// name.
func (a *assembler) card(rec *mse.Record) ([]*card.Face, error) {
	rawName, err := rec.One("name")
	if err != nil {
		return nil, err
	}
	name := strings.ReplaceAll(rawName, "’", "'")
	faces, err := a.build(rec, name)
	if err != nil {
		a.logger.Error("conversion failed", "card", name)
		return nil, fmt.Errorf("card %q: %w", name, err)
	}
	return faces, nil
}

var (
	discoverChapter = regexp.MustCompile(`(?m)^III — `)
	artistCredit    = regexp.MustCompile(`^(.+?) *\((?:[Cc]ard by |[Dd]esign:)(.*)\)$`)
)

func (a *assembler) build(rec *mse.Record, name string) ([]*card.Face, error) {
	front := &card.Face{Name: name, HasNonFoil: true}

	borderRaw := "rgb(0,0,0)"
	var err error
	if rec.Has("border color") {
		borderRaw, err = rec.One("border color")
	} else if a.info.Has("border color") {
		borderRaw, err = a.info.One("border color")
	}
	if err != nil {
		return nil, err
	}
	border, ok := borderColors[borderRaw]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBorder, borderRaw)
	}
	front.BorderColor = border

	var stylesheet string
	if rec.Has("stylesheet") {
		stylesheet, err = rec.One("stylesheet")
	} else {
		stylesheet, err = a.data.One("stylesheet")
	}
	if err != nil {
		return nil, err
	}
	if tokenStylesheets[stylesheet] {
		a.logger.Info("skipping token", "card", name)
		return nil, nil
	}
	if emblemStylesheets[stylesheet] {
		sub, err := rec.One("sub type")
		if err != nil {
			return nil, err
		}
		a.logger.Info("skipping emblem", "for", sub)
		return nil, nil
	}
	sheet, ok := a.tables.Stylesheets[stylesheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStylesheet, stylesheet)
	}
	front.Layout = sheet.Layout
	front.FrameVersion = sheet.Frame

	var back *card.Face
	switch sheet.Layout {
	case "transform":
		front.Side = "a"
		backRaw, err := rec.One("name 2")
		if err != nil {
			return nil, err
		}
		backName := strings.ReplaceAll(backRaw, "’", "'")
		back = &card.Face{Name: backName, HasNonFoil: true, Side: "b"}
		front.Names = []string{name, backName}
	case "split", "aftermath", "flip", "meld":
		return nil, fmt.Errorf("%w: %s cards are not yet implemented", ErrUnsupportedLayout, sheet.Layout)
	}

	manaCost := ""
	if rec.Has("casting cost") {
		raw, err := rec.One("casting cost")
		if err != nil {
			return nil, err
		}
		if manaCost, err = mana.Decode(raw); err != nil {
			a.logger.Error("could not parse mana cost", "cost", raw)
			return nil, err
		}
	}
	if manaCost != "" {
		front.ManaCost = manaCost
		if front.ConvertedManaCost, err = mana.Value(manaCost); err != nil {
			return nil, err
		}
	}
	if front.Layout != "normal" {
		faceValue := front.ConvertedManaCost
		front.FaceConvertedManaCost = &faceValue
	}

	implicit, err := mana.ImplicitColors(manaCost)
	if err != nil {
		return nil, err
	}
	identity := mana.NewColorSet(implicit...)
	colors := implicit
	if rec.Has("indicator") {
		raw, err := rec.One("indicator")
		if err != nil {
			return nil, err
		}
		if raw != "colorless" {
			indicator := strings.TrimSuffix(raw, ", multicolor")
			letter, ok := indicatorColors[indicator]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownIndicator, indicator)
			}
			if letter == "C" {
				colors = nil
			} else {
				colors = []string{letter}
				front.ColorIndicator = colors
				identity.Add(letter)
			}
		}
	}
	front.Colors = colors

	if err := a.typeLine(rec, front, "", identity); err != nil {
		return nil, err
	}

	switch {
	case front.Layout == "saga":
		if err := a.sagaText(rec, front, identity); err != nil {
			return nil, err
		}
	case rec.Has("level 1 text"):
		if err := a.leveledText(rec, front, identity); err != nil {
			return nil, err
		}
	default:
		if err := a.ruleText(rec, front, "rule text", 0, identity); err != nil {
			return nil, err
		}
	}

	if err := a.stats(rec, front, name); err != nil {
		return nil, err
	}

	if back != nil {
		if err := a.backFace(rec, front, back, identity); err != nil {
			return nil, err
		}
	}
	front.ColorIdentity = identity.Sorted()
	if back != nil {
		back.ColorIdentity = front.ColorIdentity
	}

	rarity := "common"
	if rec.Has("rarity") {
		raw, err := rec.One("rarity")
		if err != nil {
			return nil, err
		}
		switch raw {
		case "basic land":
			a.logger.Warn("basic land rarity is unsupported, changing to common", "card", name)
		case "special":
			a.logger.Warn("special rarity is unsupported, changing to mythic", "card", name)
		}
		if rarity, ok = rarities[raw]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRarity, raw)
		}
	}
	front.Rarity = rarity

	if rec.Has("watermark") {
		raw, err := rec.One("watermark")
		if err != nil {
			return nil, err
		}
		watermark := ""
		if raw != "none" {
			if watermark, ok = a.tables.Watermarks[raw]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownWatermark, raw)
			}
		}
		if watermark != "" && watermark != "skip" {
			front.Watermark = watermark
		}
	}

	if err := a.credits(rec, front, "", name); err != nil {
		return nil, err
	}

	faces := []*card.Face{finalize(front)}
	if back != nil {
		back.Rarity = rarity
		if err := a.credits(rec, back, " 2", name); err != nil {
			return nil, err
		}
		faces = append(faces, finalize(back))
	}
	return faces, nil
}

// typeLine renders and classifies the type fields of one face; suffix is
// "" for the front face and " 2" for the back. Basic land subtypes fold
// their colors into the identity set.
func (a *assembler) typeLine(rec *mse.Record, face *card.Face, suffix string, identity mana.ColorSet) error {
	superRaw, err := rec.One("super type" + suffix)
	if err != nil {
		return err
	}
	head, _, err := markup.Parse(superRaw, true)
	if err != nil {
		return err
	}
	subRaw, err := rec.One("sub type" + suffix)
	if err != nil {
		return err
	}
	sub, _, err := markup.Parse(subRaw, true)
	if err != nil {
		return err
	}
	sub = strings.TrimSpace(sub)
	if sub != "" {
		face.OriginalType = head + " — " + sub
	} else {
		face.OriginalType = head
	}
	supers, cardTypes, subtypes, err := typeline.Split(face.OriginalType)
	if err != nil {
		return err
	}
	face.Supertypes = supers
	face.Types = cardTypes
	face.Subtypes = subtypes
	face.Type = typeline.Join(supers, cardTypes, subtypes)
	for _, lt := range card.BasicLandTypes {
		if face.HasSubtype(lt.Subtype) {
			identity.Add(lt.Color)
		}
	}
	return nil
}

// sagaText renders the saga chapter text, applying the discovery styling
// substitution when the per-card or set-wide styling data requests it.
func (a *assembler) sagaText(rec *mse.Record, face *card.Face, identity mana.ColorSet) error {
	raw, err := rec.One("special text")
	if err != nil {
		return err
	}
	text, parsed, err := markup.Parse(raw, true)
	if err != nil {
		return err
	}
	styled, err := rec.OneOr("has styling", "no")
	if err != nil {
		return err
	}
	var styling *mse.Record
	if styled == "yes" {
		block, err := rec.One("styling data")
		if err != nil {
			return err
		}
		if styling, err = mse.Parse(block); err != nil {
			return err
		}
	} else {
		setBlock, err := a.data.One("styling")
		if err != nil {
			return err
		}
		setStyling, err := mse.Parse(setBlock)
		if err != nil {
			return err
		}
		sagaBlock, err := setStyling.One("magic-m15-saga")
		if err != nil {
			return err
		}
		if styling, err = mse.Parse(sagaBlock); err != nil {
			return err
		}
	}
	if d := styling.Get("discovery"); len(d) == 1 && d[0] == "yes" {
		if loc := discoverChapter.FindStringIndex(text); loc != nil {
			text = text[:loc[0]] + "{DISCOVER} — " + text[loc[1]:]
		}
	}
	identity.Union(parsed)
	setText(face, text)
	return nil
}

// leveledText joins the numbered level texts, prefixing each with its
// loyalty cost when the card carries loyalty costs at all.
func (a *assembler) leveledText(rec *mse.Record, face *card.Face, identity mana.ColorSet) error {
	withCosts := rec.Has("loyalty cost 1")
	var lines []string
	for level := 1; ; level++ {
		key := fmt.Sprintf("level %d text", level)
		if !rec.Has(key) {
			break
		}
		raw, err := rec.One(key)
		if err != nil {
			return err
		}
		text, parsed, err := markup.Parse(raw, true)
		if err != nil {
			return err
		}
		identity.Union(parsed)
		if withCosts {
			cost, err := rec.One(fmt.Sprintf("loyalty cost %d", level))
			if err != nil {
				return err
			}
			text = fmt.Sprintf("[%s]: %s", cost, text)
		}
		lines = append(lines, text)
	}
	setText(face, strings.Join(lines, "\n"))
	return nil
}

// ruleText renders the default rules text field line by line, prefixing
// lines with their numbered loyalty costs. Back faces offset the loyalty
// cost numbering by 4 so the fifth cost belongs to the first back line.
func (a *assembler) ruleText(rec *mse.Record, face *card.Face, field string, loyaltyOffset int, identity mana.ColorSet) error {
	if !rec.Has(field) {
		return nil
	}
	raw, err := rec.One(field)
	if err != nil {
		return err
	}
	rendered, parsed, err := markup.Parse(raw, true)
	if err != nil {
		return err
	}
	identity.Union(parsed)
	if rendered == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSpace(rendered), "\n")
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for i := range lines {
		key := fmt.Sprintf("loyalty cost %d", i+1+loyaltyOffset)
		if rec.Has(key) {
			cost, err := rec.One(key)
			if err != nil {
				return err
			}
			if cost != "" {
				lines[i] = fmt.Sprintf("[%s]: %s", cost, lines[i])
			}
		}
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	setText(face, strings.Join(lines, "\n"))
	return nil
}

// stats assigns power/toughness, substituting stability for power on cards
// without a toughness, and loyalty on planeswalkers.
func (a *assembler) stats(rec *mse.Record, face *card.Face, name string) error {
	power, err := rec.OneOr("power", "")
	if err != nil {
		return err
	}
	toughness, err := rec.OneOr("toughness", "")
	if err != nil {
		return err
	}
	if power != "" {
		if toughness != "" {
			face.Power = power
		} else {
			if !face.HasSubtype("Structure") {
				a.logger.Warn("assigning stability to non-Structure card", "card", name)
			}
			face.Stability = power
		}
	}
	if toughness != "" {
		face.Toughness = toughness
	}
	if face.HasType("Planeswalker") {
		loyalty, err := rec.OneOr("loyalty", "")
		if err != nil {
			return err
		}
		if loyalty != "" {
			face.Loyalty = loyalty
		}
	}
	return nil
}

// backFace fills in the transform back face from the "…2"-suffixed fields,
// accumulating its colors into the shared identity set.
func (a *assembler) backFace(rec *mse.Record, front, back *card.Face, identity mana.ColorSet) error {
	back.Layout = front.Layout
	back.Names = front.Names
	back.ConvertedManaCost = front.ConvertedManaCost
	zero := 0.0
	back.FaceConvertedManaCost = &zero

	colorField, err := rec.One("card color 2")
	if err != nil {
		return err
	}
	parts := strings.Split(colorField, ", ")
	for _, part := range parts {
		if part == "land" {
			parts = []string{"colorless"}
			break
		}
	}
	letters, err := backLetters(parts)
	if err != nil {
		return err
	}
	if rec.Has("indicator 2") {
		raw, err := rec.One("indicator 2")
		if err != nil {
			return err
		}
		if letters, err = backLetters(strings.Split(raw, ", ")); err != nil {
			return err
		}
	}
	backColors := mana.NewColorSet(letters...)
	back.Colors = backColors.Sorted()
	back.ColorIndicator = back.Colors
	identity.Union(backColors)

	if err := a.typeLine(rec, back, " 2", identity); err != nil {
		return err
	}
	if err := a.ruleText(rec, back, "rule text 2", 4, identity); err != nil {
		return err
	}

	power, err := rec.OneOr("power 2", "")
	if err != nil {
		return err
	}
	if power != "" {
		back.Power = power
	}
	toughness, err := rec.OneOr("toughness 2", "")
	if err != nil {
		return err
	}
	if toughness != "" {
		back.Toughness = toughness
	}
	if back.HasType("Planeswalker") {
		loyalty, err := rec.OneOr("loyalty 2", "")
		if err != nil {
			return err
		}
		if loyalty != "" {
			back.Loyalty = loyalty
		}
	}
	return nil
}

// backLetters maps a comma-separated card color field to color letters,
// dropping the modifier words MSE appends.
func backLetters(parts []string) ([]string, error) {
	var letters []string
	for _, part := range parts {
		if backColorModifiers[part] {
			continue
		}
		letter, ok := backColorWords[part]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, part)
		}
		letters = append(letters, letter)
	}
	return letters, nil
}

// credits extracts flavor text and the artist credit of one face; a
// parenthetical design credit moves into the flavor text.
func (a *assembler) credits(rec *mse.Record, face *card.Face, suffix, name string) error {
	flavor := ""
	if rec.Has("flavor text" + suffix) {
		raw, err := rec.One("flavor text" + suffix)
		if err != nil {
			return err
		}
		text, _, err := markup.Parse(raw, false)
		if err != nil {
			return err
		}
		flavor = strings.TrimRight(text, " \t\n")
	}
	switch {
	case rec.Has("illustrator" + suffix):
		artist, err := rec.One("illustrator" + suffix)
		if err != nil {
			return err
		}
		if m := artistCredit.FindStringSubmatch(artist); m != nil {
			if flavor == "" {
				flavor = "Designed by " + m[2]
			} else {
				flavor += "\nDesigned by " + m[2]
			}
			face.Artist = m[1]
		} else {
			face.Artist = artist
		}
	default:
		image, err := rec.OneOr("image"+suffix, "")
		if err != nil {
			return err
		}
		if image != "" {
			return fmt.Errorf("%w on %s", ErrMissingArtist, name)
		}
		face.Artist = "(no image)"
	}
	if flavor != "" {
		face.FlavorText = flavor
	}
	return nil
}

// setText assigns both text fields; empty text leaves them unset.
func setText(face *card.Face, text string) {
	if text != "" {
		face.Text = text
		face.OriginalText = text
	}
}

// finalize normalizes list fields so empty lists serialize as [] rather
// than null.
func finalize(face *card.Face) *card.Face {
	if face.Colors == nil {
		face.Colors = []string{}
	}
	if face.ColorIdentity == nil {
		face.ColorIdentity = []string{}
	}
	if face.Supertypes == nil {
		face.Supertypes = []string{}
	}
	if face.Types == nil {
		face.Types = []string{}
	}
	if face.Subtypes == nil {
		face.Subtypes = []string{}
	}
	if face.Rulings == nil {
		face.Rulings = []card.Ruling{}
	}
	return face
}
