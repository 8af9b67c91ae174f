package app

// Extras is the key/value transport container carried by an Intent. It only
// holds the fixed set of kinds the accessors below expose; generated code is
// responsible for funneling every declared argument type into one of them.
//
// Getters return the zero value and false when the key is absent or holds a
// value of a different kind.
type Extras struct {
	values map[string]any
}

// NewExtras returns an empty container.
func NewExtras() *Extras {
	return &Extras{values: make(map[string]any)}
}

// Len reports the number of stored keys.
func (e *Extras) Len() int {
	return len(e.values)
}

// Has reports whether a value is stored under key.
func (e *Extras) Has(key string) bool {
	_, ok := e.values[key]
	return ok
}

func (e *Extras) put(key string, v any) {
	e.values[key] = v
}

func get[T any](e *Extras, key string) (T, bool) {
	v, ok := e.values[key].(T)
	return v, ok
}

func (e *Extras) PutBool(key string, v bool)       { e.put(key, v) }
func (e *Extras) PutString(key string, v string)   { e.put(key, v) }
func (e *Extras) PutInt(key string, v int)         { e.put(key, v) }
func (e *Extras) PutInt8(key string, v int8)       { e.put(key, v) }
func (e *Extras) PutInt16(key string, v int16)     { e.put(key, v) }
func (e *Extras) PutInt32(key string, v int32)     { e.put(key, v) }
func (e *Extras) PutInt64(key string, v int64)     { e.put(key, v) }
func (e *Extras) PutUint(key string, v uint)       { e.put(key, v) }
func (e *Extras) PutUint8(key string, v uint8)     { e.put(key, v) }
func (e *Extras) PutUint16(key string, v uint16)   { e.put(key, v) }
func (e *Extras) PutUint32(key string, v uint32)   { e.put(key, v) }
func (e *Extras) PutUint64(key string, v uint64)   { e.put(key, v) }
func (e *Extras) PutFloat32(key string, v float32) { e.put(key, v) }
func (e *Extras) PutFloat64(key string, v float64) { e.put(key, v) }

func (e *Extras) Bool(key string) (bool, bool)       { return get[bool](e, key) }
func (e *Extras) String(key string) (string, bool)   { return get[string](e, key) }
func (e *Extras) Int(key string) (int, bool)         { return get[int](e, key) }
func (e *Extras) Int8(key string) (int8, bool)       { return get[int8](e, key) }
func (e *Extras) Int16(key string) (int16, bool)     { return get[int16](e, key) }
func (e *Extras) Int32(key string) (int32, bool)     { return get[int32](e, key) }
func (e *Extras) Int64(key string) (int64, bool)     { return get[int64](e, key) }
func (e *Extras) Uint(key string) (uint, bool)       { return get[uint](e, key) }
func (e *Extras) Uint8(key string) (uint8, bool)     { return get[uint8](e, key) }
func (e *Extras) Uint16(key string) (uint16, bool)   { return get[uint16](e, key) }
func (e *Extras) Uint32(key string) (uint32, bool)   { return get[uint32](e, key) }
func (e *Extras) Uint64(key string) (uint64, bool)   { return get[uint64](e, key) }
func (e *Extras) Float32(key string) (float32, bool) { return get[float32](e, key) }
func (e *Extras) Float64(key string) (float64, bool) { return get[float64](e, key) }

func (e *Extras) PutBoolSlice(key string, v []bool)       { e.put(key, v) }
func (e *Extras) PutByteSlice(key string, v []byte)       { e.put(key, v) }
func (e *Extras) PutStringSlice(key string, v []string)   { e.put(key, v) }
func (e *Extras) PutIntSlice(key string, v []int)         { e.put(key, v) }
func (e *Extras) PutInt32Slice(key string, v []int32)     { e.put(key, v) }
func (e *Extras) PutInt64Slice(key string, v []int64)     { e.put(key, v) }
func (e *Extras) PutFloat32Slice(key string, v []float32) { e.put(key, v) }
func (e *Extras) PutFloat64Slice(key string, v []float64) { e.put(key, v) }

func (e *Extras) BoolSlice(key string) ([]bool, bool)       { return get[[]bool](e, key) }
func (e *Extras) ByteSlice(key string) ([]byte, bool)       { return get[[]byte](e, key) }
func (e *Extras) StringSlice(key string) ([]string, bool)   { return get[[]string](e, key) }
func (e *Extras) IntSlice(key string) ([]int, bool)         { return get[[]int](e, key) }
func (e *Extras) Int32Slice(key string) ([]int32, bool)     { return get[[]int32](e, key) }
func (e *Extras) Int64Slice(key string) ([]int64, bool)     { return get[[]int64](e, key) }
func (e *Extras) Float32Slice(key string) ([]float32, bool) { return get[[]float32](e, key) }
func (e *Extras) Float64Slice(key string) ([]float64, bool) { return get[[]float64](e, key) }

func (e *Extras) PutTransferable(key string, v Transferable) { e.put(key, v) }

func (e *Extras) Transferable(key string) (Transferable, bool) {
	return get[Transferable](e, key)
}

// PutTransferableSlice stores a generic transferable sequence. Generated code
// widens the declared slice into []Transferable before the call and narrows it
// back element by element on the way out.
func (e *Extras) PutTransferableSlice(key string, v []Transferable) { e.put(key, v) }

func (e *Extras) TransferableSlice(key string) ([]Transferable, bool) {
	return get[[]Transferable](e, key)
}
