package evlog

import (
	"errors"
	"log/slog"

	"github.com/tracedecode/evlog/internal/types"
)

// DecodeAll decodes codes in order using the decoder's ErrorPolicy.
func (d *Decoder) DecodeAll(codes []uint32) ([]Result, error) {
	return d.DecodeAllWithPolicy(codes, d.policy)
}

// DecodeAllWithPolicy decodes codes in order.
//
// With AbortOnError it returns the results decoded before the first failure
// and an *EntryError for that entry. With SkipOnError failing entries are
// left out of the results and every *EntryError is returned joined; the error
// is nil when all entries decoded.
func (d *Decoder) DecodeAllWithPolicy(codes []uint32, policy ErrorPolicy) ([]Result, error) {
	results := make([]Result, 0, len(codes))
	var errs []error

	for i, code := range codes {
		res, err := d.Decode(code)
		if err != nil {
			entryErr := &EntryError{Index: i, Code: code, Err: err}
			if policy != SkipOnError {
				return results, entryErr
			}
			d.log.Log(slog.LevelWarn, "skipping event code",
				slog.Int("index", i), types.Hex("code", code), slog.Any("error", err))
			errs = append(errs, entryErr)
			continue
		}
		results = append(results, res)
	}

	d.log.Log(slog.LevelDebug, "decoded event codes",
		slog.Int("count", len(codes)),
		slog.Int("decoded", len(results)),
		slog.Int("failed", len(errs)))

	return results, errors.Join(errs...)
}
