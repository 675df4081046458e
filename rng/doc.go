/*
Package rng implements a purely functional pseudo-random number generator.

An RNG never changes. Generating a number returns the number together with the
generator to use for the next one:

	r := rng.SimpleRNG{Seed: 42}
	n1, r2 := r.NextInt()
	n2, _ := r.NextInt()   // n2 == n1
	n3, _ := r2.NextInt()  // the next number in the sequence

SimpleRNG is a linear congruential generator with the parameters of java.util.Random.
It is not suitable for cryptographic purposes.

Threading generator states by hand gets tedious quickly. Type Rand captures a
“state action”, i.e. a function from a generator to a value and the next generator.
Rands are combined with Map, Map2, FlatMap and Sequence, which take care of
passing the state along.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rng

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.rng'.
func tracer() tracing.Trace {
	return tracing.Select("fp.rng")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rng: "+msg, msgargs...)
		panic(msg)
	}
}
