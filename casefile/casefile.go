// Package casefile reads test cases from JSON or msgpack files
// and writes test cases and reconstruction reports.
//
// Two layouts are accepted. The points layout:
//
//	{"n": 4, "k": 3, "points": [{"base": 10, "value": "3"}, ...]}
//
// where n and k may also be given in a "keys" object, and the keyed layout:
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "3"}, ...}
//
// In both layouts, base may be a string or a number.
package casefile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/shaih/go-polyrecon/primitives/shamir"
	"github.com/ugorji/go/codec"
)

// ErrMalformed is returned when a test case file misses fields or has fields of the wrong type
var ErrMalformed = errors.New("casefile: malformed test case")

// Format is the serialization of a file
type Format int

const (
	// FormatJSON is JSON
	FormatJSON Format = iota
	// FormatMsgpack is msgpack
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath returns FormatMsgpack for .msgpack and .mp files and FormatJSON otherwise
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return FormatMsgpack
	}
	return FormatJSON
}

var (
	jsonHandle    = &codec.JsonHandle{}
	msgpackHandle = &codec.MsgpackHandle{}
)

func init() {
	mapType := reflect.TypeOf(map[string]interface{}(nil))

	jsonHandle.MapType = mapType
	jsonHandle.Indent = 2

	msgpackHandle.MapType = mapType
	msgpackHandle.RawToString = true
	msgpackHandle.WriteExt = true
}

func handle(format Format) codec.Handle {
	if format == FormatMsgpack {
		return msgpackHandle
	}
	return jsonHandle
}

// point is a share in the points layout
type point struct {
	Base  int    `codec:"base"`
	Value string `codec:"value"`
}

// pointsFile is the points layout, as written by Encode
type pointsFile struct {
	N      int     `codec:"n"`
	K      int     `codec:"k"`
	Points []point `codec:"points"`
}

// Load reads the test case in the file path, in the format given by its extension
func Load(path string) (*shamir.TestCase, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tc, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tc, nil
}

// Decode reads a test case in either layout from r.
// Only the shape of the file is checked. Dimensions and digits are checked by shamir.
func Decode(r io.Reader, format Format) (*shamir.TestCase, error) {
	var raw interface{}
	err := codec.NewDecoder(r, handle(format)).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode %v: %v", ErrMalformed, format, err)
	}
	obj, ok := asMap(raw)
	if !ok {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}

	keys := obj
	if k, present := obj["keys"]; present {
		keys, ok = asMap(k)
		if !ok {
			return nil, fmt.Errorf("%w: \"keys\" is not an object", ErrMalformed)
		}
	}
	n, err := intField(keys, "n")
	if err != nil {
		return nil, err
	}
	k, err := intField(keys, "k")
	if err != nil {
		return nil, err
	}

	tc := &shamir.TestCase{N: n, K: k}
	if points, present := obj["points"]; present {
		tc.Shares, err = decodePoints(points)
	} else {
		tc.Shares, err = decodeKeyed(obj, n)
	}
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func decodePoints(v interface{}) ([]shamir.Share, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: \"points\" is not a list", ErrMalformed)
	}
	shares := make([]shamir.Share, len(list))
	for i, p := range list {
		obj, ok := asMap(p)
		if !ok {
			return nil, fmt.Errorf("%w: point %d is not an object", ErrMalformed, i+1)
		}
		s, err := decodeShare(obj)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i+1, err)
		}
		shares[i] = s
	}
	return shares, nil
}

func decodeKeyed(obj map[string]interface{}, n int) ([]shamir.Share, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative n", ErrMalformed)
	}
	// n is untrusted: shares grow with the keys actually present
	var shares []shamir.Share
	for i := 1; i <= n; i++ {
		key := strconv.Itoa(i)
		v, present := obj[key]
		if !present {
			return nil, fmt.Errorf("%w: missing share %q", ErrMalformed, key)
		}
		sobj, ok := asMap(v)
		if !ok {
			return nil, fmt.Errorf("%w: share %q is not an object", ErrMalformed, key)
		}
		s, err := decodeShare(sobj)
		if err != nil {
			return nil, fmt.Errorf("share %q: %w", key, err)
		}
		shares = append(shares, s)
	}

	for key := range obj {
		if key == "keys" {
			continue
		}
		i, err := strconv.Atoi(key)
		if err != nil || i < 1 || i > n {
			return nil, fmt.Errorf("%w: unexpected key %q", ErrMalformed, key)
		}
	}
	return shares, nil
}

func decodeShare(obj map[string]interface{}) (shamir.Share, error) {
	base, err := intField(obj, "base")
	if err != nil {
		return shamir.Share{}, err
	}
	v, present := obj["value"]
	if !present {
		return shamir.Share{}, fmt.Errorf("%w: missing field \"value\"", ErrMalformed)
	}
	digits, ok := v.(string)
	if !ok {
		return shamir.Share{}, fmt.Errorf("%w: field \"value\" is not a string", ErrMalformed)
	}
	return shamir.Share{Base: base, Digits: digits}, nil
}

// asMap accepts both map flavors a codec may produce
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case map[interface{}]interface{}:
		res := make(map[string]interface{}, len(m))
		for k, e := range m {
			switch ks := k.(type) {
			case string:
				res[ks] = e
			case []byte:
				res[string(ks)] = e
			default:
				return nil, false
			}
		}
		return res, true
	}
	return nil, false
}

// intField returns the integer field name of obj, given either as a number or as a decimal string
func intField(obj map[string]interface{}, name string) (int, error) {
	v, present := obj[name]
	if !present {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformed, name)
	}
	switch x := v.(type) {
	case int64:
		return int(x), nil
	case uint64:
		if x > math.MaxInt32 {
			break
		}
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > math.MaxInt32 {
			break
		}
		return int(x), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			break
		}
		return i, nil
	case []byte:
		i, err := strconv.Atoi(strings.TrimSpace(string(x)))
		if err != nil {
			break
		}
		return i, nil
	}
	return 0, fmt.Errorf("%w: field %q is not an integer: %v", ErrMalformed, name, v)
}

// Encode writes tc to w in the points layout
func Encode(w io.Writer, tc *shamir.TestCase, format Format) error {
	file := pointsFile{
		N:      tc.N,
		K:      tc.K,
		Points: make([]point, len(tc.Shares)),
	}
	for i, s := range tc.Shares {
		file.Points[i] = point{Base: s.Base, Value: s.Digits}
	}
	return codec.NewEncoder(w, handle(format)).Encode(&file)
}

// Save writes tc to the file path, in the format given by its extension
func Save(path string, tc *shamir.TestCase) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return Encode(f, tc, FormatFromPath(path))
}
