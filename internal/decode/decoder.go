// Package decode implements the Record Decoder (§2 item 6, §4.5): the
// central state machine that turns one tokenised history-log line into a
// decoded record, dispatching the handful of command- and field-specific
// rules the format requires (client-type lookup, password redaction, date
// normalisation, library-code cleanup, item-barcode enrichment) while
// keeping the main loop itself free of command-specific knowledge (§9).
package decode

import (
	"strings"

	"hist2json/internal/codetables"
	"hist2json/internal/itemindex"
	"hist2json/internal/tokenize"
	"hist2json/internal/translate"
	"hist2json/pkg/normalize"
	"hist2json/pkg/types"
)

// Tables bundles the four read-only lookup structures a decode call
// consults. Items may be nil, meaning item-id enrichment is disabled.
type Tables struct {
	Command *codetables.Table
	Data    *codetables.Table
	Client  *codetables.Table
	Items   *itemindex.Index
}

// Result carries a decoded record plus the diagnostics a streaming driver
// folds into its end-of-run summary (§4.7, §8).
type Result struct {
	Record             *types.Record
	Missing            []string // unrecognised data-code tags, in encounter order
	ItemIndexAttempted bool
	ItemIndexHit       bool
}

const (
	tagClientType = "dC"
	tagUserPin    = "Uf"
	tagCatalogKey = "tJ"
	tagCallSeq    = "tL"
	tagCopyNum    = "IS"
)

// explicitDateTags names the date/time data codes that must be normalised
// even though their canonical field name doesn't match the date_/_activity/
// _expires/_granted pattern (§4.5c) — notably UZ, whose canonical name is
// birth_year (Design Notes §9, second open question).
var explicitDateTags = map[string]bool{
	"UK": true,
	"HB": true,
	"UD": true,
	"UZ": true,
	"CO": true,
}

// explicitLibraryTags names the library-code data codes that strip a
// leading EPL prefix even when their canonical name doesn't itself contain
// "library" (§4.5d).
var explicitLibraryTags = map[string]bool{
	"FE": true,
	"FW": true,
	"HO": true,
	"nu": true,
}

func isDateField(tag, canonicalName string) bool {
	if explicitDateTags[tag] {
		return true
	}
	return strings.HasPrefix(canonicalName, "date_") ||
		strings.HasSuffix(canonicalName, "_activity") ||
		strings.HasSuffix(canonicalName, "_expires") ||
		strings.HasSuffix(canonicalName, "_granted")
}

func isLibraryField(tag, canonicalName string) bool {
	return explicitLibraryTags[tag] || strings.Contains(canonicalName, "library")
}

func isDischargeSentinel(tok string) bool {
	if len(tok) == 0 || tok[0] != 'O' {
		return false
	}
	for _, r := range tok[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Decode turns a single raw history-log line into a decoded record. ok is
// false only when the header fails to normalise to a timestamp (§4.5
// step 1, §4.8 "malformed header"); every other anomaly — unknown codes,
// item-index misses — degrades the record rather than failing it.
func Decode(line string, tables Tables) (res Result, ok bool) {
	tokens := tokenize.Split(line)
	if len(tokens) == 0 {
		return Result{}, false
	}

	timestamp := normalize.Date(tokens[0])
	if timestamp == "" {
		return Result{}, false
	}

	rec := types.NewRecord()
	rec.Set("timestamp", timestamp)

	payload := tokens[1:]
	commandName := ""
	if len(payload) > 0 {
		envelope := payload[0]
		name, _, _ := translate.Command(envelope, tables.Command)
		commandName = name
		rec.Set("command_code", name)

		if remainder := tokenize.EnvelopeRemainder(envelope); remainder != "" {
			payload[0] = remainder
		} else {
			payload = payload[1:]
		}
	}

	var catalogKey, callSeq, copyNum string
	var haveCatalog, haveSeq, haveCopy bool
	var missing []string
	var indexAttempted, indexHit bool

	for _, tok := range payload {
		if tok == "" || isDischargeSentinel(tok) || len(tok) < 2 {
			continue
		}
		tag := tok[:2]
		value := tok[2:]

		switch tag {
		case tagClientType:
			name, _ := translate.Client(value, tables.Client)
			rec.Set("client_type", name)
			continue
		case tagUserPin:
			rec.Set("user_pin", "xxxxx")
			continue
		case tagCatalogKey:
			catalogKey, haveCatalog = value, true
		case tagCallSeq:
			callSeq, haveSeq = value, true
		case tagCopyNum:
			copyNum, haveCopy = value, true
		default:
			name, _, known := translate.DataField(tok, tables.Data, false)
			if !known {
				rec.Set("data_code_"+tag, value)
				missing = append(missing, tag)
				continue
			}
			if isDateField(tag, name) {
				value = normalize.Date(value)
			}
			if isLibraryField(tag, name) {
				value = strings.TrimPrefix(value, "EPL")
			}
			rec.Set(name, value)
		}

		if haveCatalog && haveSeq && haveCopy {
			indexAttempted = true
			if barcode, hit := tables.Items.Lookup(catalogKey, callSeq, copyNum); hit {
				rec.Set("item_id", barcode)
				indexHit = true
			}
			haveCatalog, haveSeq, haveCopy = false, false, false
		}
	}

	applyPostProcessing(commandName, rec)

	return Result{
		Record:             rec,
		Missing:            missing,
		ItemIndexAttempted: indexAttempted,
		ItemIndexHit:       indexHit,
	}, true
}
