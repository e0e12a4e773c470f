// Package style turns a journal specification into presentation parameters
// and applies them to figures.
//
// Two ways are offered. [ParamsFor] is pure: it returns a [Params] value and
// touches nothing else. [Set] is the process-wide variant: it stores the
// parameters as the current style, read by every later [NewFigure] call
// until the next Set or [Reset].
//
//	spec, err := style.Set("nature", style.WithContext("talk"))
//	if err != nil {
//	    return err
//	}
//	fig := style.NewFigure(1, 3, journal.WidthDouble, 0.6, spec)
//
// [ApplyToFigure] restyles an existing figure in place: fonts, tick labels,
// spines and legend text. Plotted data is never modified.
package style
