package sample

import (
	"math"
	"math/big"

	"github.com/arloliu/serbench/encoding"
)

// Uint128 is an unsigned 128-bit integer split into 64-bit halves.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// MaxUint128 is the largest Uint128 value.
var MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}

// Uint128From64 returns v as a Uint128.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Big returns the value as a big.Int.
func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)

	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation.
func (u Uint128) String() string {
	return u.Big().String()
}

// WideRecord is the sample record with 128-bit integers.
//
// Only the Borsh strategy encodes it; the self-describing formats have no
// native 128-bit integer type.
type WideRecord struct {
	LongFieldA string
	LongFieldB string
	LongFieldC string
	LongFieldX Uint128
	LongFieldY Uint128
	LongFieldZ Uint128
}

var (
	_ encoding.BorshMarshaler   = WideRecord{}
	_ encoding.BorshUnmarshaler = (*WideRecord)(nil)
)

// NewWide returns the fixed wide benchmark record.
func NewWide() WideRecord {
	return WideRecord{
		LongFieldA: "String A",
		LongFieldB: "String B",
		LongFieldC: "String C",
		LongFieldX: Uint128From64(1),
		LongFieldY: Uint128From64(1),
		LongFieldZ: MaxUint128,
	}
}

// MarshalBorsh writes the record fields in declaration order.
func (r WideRecord) MarshalBorsh(w *encoding.BorshWriter) error {
	for _, s := range [...]string{r.LongFieldA, r.LongFieldB, r.LongFieldC} {
		if err := w.WriteString(s); err != nil {
			return err
		}
	}

	for _, v := range [...]Uint128{r.LongFieldX, r.LongFieldY, r.LongFieldZ} {
		w.WriteU128(v.Hi, v.Lo)
	}

	return nil
}

// UnmarshalBorsh reads the record fields in declaration order.
func (r *WideRecord) UnmarshalBorsh(br *encoding.BorshReader) error {
	var out WideRecord
	var err error

	for _, s := range [...]*string{&out.LongFieldA, &out.LongFieldB, &out.LongFieldC} {
		if *s, err = br.ReadString(); err != nil {
			return err
		}
	}
	for _, v := range [...]*Uint128{&out.LongFieldX, &out.LongFieldY, &out.LongFieldZ} {
		if v.Hi, v.Lo, err = br.ReadU128(); err != nil {
			return err
		}
	}

	*r = out

	return nil
}
