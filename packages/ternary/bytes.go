package ternary

import (
	"github.com/cockroachdb/errors"
)

// PlaceholderByte replaces every tryte pair that cannot be decoded into a byte during lenient decoding.
const PlaceholderByte = '?'

// DecodeMode controls how TryteStrings that were not created from bytes are decoded.
type DecodeMode uint8

const (
	// DecodeLenient replaces a dangling tryte or a pair without a byte value with the PlaceholderByte.
	DecodeLenient DecodeMode = iota

	// DecodeStrict fails with ErrOddLength or ErrUndecodablePair instead of replacing anything.
	DecodeStrict
)

// String returns a human-readable version of the DecodeMode.
func (d DecodeMode) String() string {
	switch d {
	case DecodeLenient:
		return "DecodeLenient"
	case DecodeStrict:
		return "DecodeStrict"
	default:
		return "DecodeMode(unknown)"
	}
}

// trytePairsByByte contains the two tryte symbols (low tryte first) that every byte value is encoded to.
var trytePairsByByte = [256]string{
	"99", "A9", "B9", "C9", "D9", "E9", "F9", "G9", "H9", "I9", "J9", "K9", "L9", "M9", "N9", "O9",
	"P9", "Q9", "R9", "S9", "T9", "U9", "V9", "W9", "X9", "Y9", "Z9", "9A", "AA", "BA", "CA", "DA",
	"EA", "FA", "GA", "HA", "IA", "JA", "KA", "LA", "MA", "NA", "OA", "PA", "QA", "RA", "SA", "TA",
	"UA", "VA", "WA", "XA", "YA", "ZA", "9B", "AB", "BB", "CB", "DB", "EB", "FB", "GB", "HB", "IB",
	"JB", "KB", "LB", "MB", "NB", "OB", "PB", "QB", "RB", "SB", "TB", "UB", "VB", "WB", "XB", "YB",
	"ZB", "9C", "AC", "BC", "CC", "DC", "EC", "FC", "GC", "HC", "IC", "JC", "KC", "LC", "MC", "NC",
	"OC", "PC", "QC", "RC", "SC", "TC", "UC", "VC", "WC", "XC", "YC", "ZC", "9D", "AD", "BD", "CD",
	"DD", "ED", "FD", "GD", "HD", "ID", "JD", "KD", "LD", "MD", "ND", "OD", "PD", "QD", "RD", "SD",
	"TD", "UD", "VD", "WD", "XD", "YD", "ZD", "9E", "AE", "BE", "CE", "DE", "EE", "FE", "GE", "HE",
	"IE", "JE", "KE", "LE", "ME", "NE", "OE", "PE", "QE", "RE", "SE", "TE", "UE", "VE", "WE", "XE",
	"YE", "ZE", "9F", "AF", "BF", "CF", "DF", "EF", "FF", "GF", "HF", "IF", "JF", "KF", "LF", "MF",
	"NF", "OF", "PF", "QF", "RF", "SF", "TF", "UF", "VF", "WF", "XF", "YF", "ZF", "9G", "AG", "BG",
	"CG", "DG", "EG", "FG", "GG", "HG", "IG", "JG", "KG", "LG", "MG", "NG", "OG", "PG", "QG", "RG",
	"SG", "TG", "UG", "VG", "WG", "XG", "YG", "ZG", "9H", "AH", "BH", "CH", "DH", "EH", "FH", "GH",
	"HH", "IH", "JH", "KH", "LH", "MH", "NH", "OH", "PH", "QH", "RH", "SH", "TH", "UH", "VH", "WH",
	"XH", "YH", "ZH", "9I", "AI", "BI", "CI", "DI", "EI", "FI", "GI", "HI", "II", "JI", "KI", "LI",
}

// bytesByTryteIndices maps the alphabet indices of a tryte pair (low*27 + high) to the encoded byte or -1.
var bytesByTryteIndices = func() (table [len(TryteAlphabet) * len(TryteAlphabet)]int16) {
	for i := range table {
		table[i] = -1
	}

	for value, pair := range trytePairsByByte {
		table[pairIndex(MustTryteFromChar(pair[0]), MustTryteFromChar(pair[1]))] = int16(value)
	}

	return table
}()

// TryteStringFromBytes encodes the given bytes into a TryteString. Every byte occupies two trytes, so the result is
// always twice as long as the input.
func TryteStringFromBytes(bytes []byte) *TryteString {
	trytes := make([]Tryte, 0, 2*len(bytes))
	for _, b := range bytes {
		pair := trytePairsByByte[b]
		trytes = append(trytes, tryteValuesByChar[pair[0]], tryteValuesByChar[pair[1]])
	}

	return &TryteString{trytes: trytes}
}

// Bytes decodes the TryteString into bytes using DecodeLenient. It never fails but only returns the original bytes
// if the TryteString was created by TryteStringFromBytes.
func (t *TryteString) Bytes() []byte {
	bytes, _ := t.DecodeBytes(DecodeLenient)

	return bytes
}

// DecodeBytes decodes pairs of trytes into bytes using the given DecodeMode.
func (t *TryteString) DecodeBytes(mode DecodeMode) (bytes []byte, err error) {
	if mode == DecodeStrict && len(t.trytes)%2 != 0 {
		err = errors.Errorf("trailing tryte at position %d can not be decoded: %w", len(t.trytes)-1, ErrOddLength)
		return
	}

	bytes = make([]byte, 0, (len(t.trytes)+1)/2)
	for i := 0; i < len(t.trytes); i += 2 {
		if i+1 == len(t.trytes) {
			bytes = append(bytes, PlaceholderByte)
			break
		}

		value := bytesByTryteIndices[pairIndex(t.trytes[i], t.trytes[i+1])]
		if value < 0 {
			if mode == DecodeStrict {
				err = errors.Errorf("pair %c%c at position %d: %w", t.trytes[i].Char(), t.trytes[i+1].Char(), i, ErrUndecodablePair)
				return nil, err
			}

			bytes = append(bytes, PlaceholderByte)
			continue
		}

		bytes = append(bytes, byte(value))
	}

	return bytes, nil
}

func pairIndex(low, high Tryte) int {
	return low.Index()*len(TryteAlphabet) + high.Index()
}
