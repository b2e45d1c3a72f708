// Package producer defines the pull protocol every seqkit stage speaks.
//
// A Producer yields Steps on demand. Besides Next it exposes Return, which
// terminates the producer and everything it reads from, and Throw, which
// injects an error that a Generator with a Recover branch may survive.
//
// # Sources
//
//   - FromSlice, Of: array-backed
//   - FromSeq: adapts an iter.Seq through iter.Pull
//   - FromFunc, NewGenerator: hand-written producers
//   - Empty, Failed: degenerate sources
//
// # Usage
//
//	p := producer.Of(1, 2, 3)
//	for {
//	    st, err := p.Next()
//	    if err != nil || st.Done {
//	        break
//	    }
//	    fmt.Println(st.Value)
//	}
package producer
