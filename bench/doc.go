// Package bench drives the serialization × compression benchmark.
//
// A Runner encodes one record with the JSON baseline and then with every
// configured format, once uncompressed and once per configured codec. Every
// measurement is checked by decoding it back and comparing it with the
// original record; a mismatch means a codec or serializer is broken and
// the runner panics.
//
// Example:
//
//	runner, err := bench.NewRunner(log, bench.WithCompressions(format.CompressionBrotli))
//	if err != nil {
//	    return err
//	}
//	rep, err := runner.Run()
//	if err != nil {
//	    return err
//	}
//	for _, res := range rep.Results {
//	    fmt.Println(res.Method, res.Bytes, res.Reduction)
//	}
package bench
