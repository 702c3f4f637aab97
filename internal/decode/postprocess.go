package decode

import "hist2json/pkg/types"

// postProcessor applies command-specific corrections to an otherwise
// complete record. Keeping these in a lookup table rather than branches in
// the main decode loop follows Design Notes §9: the loop itself carries no
// command-specific knowledge.
type postProcessor func(rec *types.Record)

var postProcessors = map[string]postProcessor{
	"Discharge Item": postDischargeItem,
}

func applyPostProcessing(commandName string, rec *types.Record) {
	if pp, ok := postProcessors[commandName]; ok {
		pp(rec)
	}
}

// postDischargeItem backfills date_of_discharge from the record's
// timestamp when the payload carried no explicit discharge date (§4.5
// step 5). birth_year needs no analogous entry here: its canonicalisation
// comes from the data-code table itself (UZ → birth_year), not from any
// command-specific override (§9, second open question).
func postDischargeItem(rec *types.Record) {
	if rec.Has("date_of_discharge") {
		return
	}
	ts, ok := rec.Get("timestamp")
	if !ok || len(ts) < 10 {
		return
	}
	rec.Set("date_of_discharge", ts[:10])
}
