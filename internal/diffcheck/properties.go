package diffcheck

import (
	"bytes"
	"slices"

	"github.com/msto63/sso/pkg/sso"
)

// Properties returns the full catalogue of differential checks
func Properties() []Property {
	return []Property{
		{"size", "size, length, emptiness and representation of constructed values", checkSize},
		{"construct", "New, FromString, WithCapacity and Concat", checkConstruct},
		{"cstring", "NUL-terminated input to construction, assignment, append and prefix tests", checkCString},
		{"clone", "clones are deep and exactly sized", checkClone},
		{"move", "Move and MoveFrom transfer content and empty the source", checkMove},
		{"swap", "Swap exchanges content", checkSwap},
		{"assign", "Assign, AssignString and CopyFrom reuse or replace storage", checkAssign},
		{"at", "checked access inside and outside the content", checkAt},
		{"index", "unchecked access, Front and Back", checkIndex},
		{"iterate", "forward and backward iteration", checkIterate},
		{"reserve", "Reserve grows exactly and never shrinks", checkReserve},
		{"shrink", "ShrinkToFit tightens to the content and is idempotent", checkShrink},
		{"clear", "Clear empties and keeps capacity", checkClear},
		{"insert", "Insert and InsertString at any position", checkInsert},
		{"insert-fill", "InsertFill at any position", checkInsertFill},
		{"erase", "Erase clamps counts and rejects positions beyond the content", checkErase},
		{"erase-range", "EraseRange and EraseAt", checkEraseRange},
		{"push-pop", "PushBack and PopBack sequences", checkPushPop},
		{"append", "Append, AppendString and AppendFill sequences", checkAppend},
		{"write", "io.Writer, io.StringWriter and io.ByteWriter", checkWrite},
		{"starts-with", "prefix tests over every operand kind", checkStartsWith},
		{"ends-with", "suffix tests over every operand kind", checkEndsWith},
		{"substr", "Substr clamps counts and sizes results exactly", checkSubstr},
		{"copy", "CopyTo clamps to content and destination", checkCopy},
		{"resize", "Resize and ResizeFill truncate or pad", checkResize},
		{"concat", "copying concatenation leaves operands unchanged", checkConcat},
		{"concat-owned", "owned concatenation reuses the consumed operand", checkConcatOwned},
		{"compare", "equality and unsigned lexicographic ordering", checkCompare},
		{"write-to", "WriteTo emits the content without terminator", checkWriteTo},
		{"out-of-range", "every checked operation rejects positions beyond the content", checkOutOfRange},
	}
}

func checkSize(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	if err := agree("size", s, b); err != nil {
		return err
	}
	if s.IsInline() != (len(b) <= sso.InlineCap) {
		return mismatch("size", "inline %v for length %d", s.IsInline(), len(b))
	}
	if s.String() != string(b) {
		return mismatch("size", "String() %q, want %q", s.String(), b)
	}
	return expectCap("size", s, exactCap(len(b)))
}

func checkConstruct(g *Gen) error {
	if err := agree("new", sso.New(), nil); err != nil {
		return err
	}

	b := g.Bytes()
	if err := agree("from-string", sso.FromString(string(b)), b); err != nil {
		return err
	}

	hint := g.Length()
	w := sso.WithCapacity(hint)
	if err := agree("with-capacity", w, nil); err != nil {
		return err
	}
	if err := expectCap("with-capacity", w, exactCap(hint)); err != nil {
		return err
	}

	x, y := g.Bytes(), g.Bytes()
	c := sso.Concat(x, y)
	if err := agree("concat-parts", c, concat(x, y)); err != nil {
		return err
	}
	return expectCap("concat-parts", c, exactCap(len(x)+len(y)))
}

func checkCString(g *Gen) error {
	raw := g.Bytes()
	want := raw
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		want = raw[:i]
	}

	if err := agree("from-cstring", sso.FromCString(raw), want); err != nil {
		return err
	}

	s := sso.FromBytes(g.Bytes())
	s.AssignCString(raw)
	if err := agree("assign-cstring", s, want); err != nil {
		return err
	}

	base := g.Bytes()
	a := sso.FromBytes(base)
	a.AppendCString(raw)
	if err := agree("append-cstring", a, concat(base, want)); err != nil {
		return err
	}

	if got := a.StartsWithCString(raw); got != bytes.HasPrefix(a.View(), want) {
		return mismatch("starts-with-cstring", "got %v", got)
	}
	if got := a.EndsWithCString(raw); got != bytes.HasSuffix(a.View(), want) {
		return mismatch("ends-with-cstring", "got %v", got)
	}
	return nil
}

func checkClone(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	s.Reserve(g.Length() * 2)

	c := s.Clone()
	if err := agree("clone", c, b); err != nil {
		return err
	}
	if err := expectCap("clone", c, exactCap(len(b))); err != nil {
		return err
	}

	c.AppendFill(1+g.IntN(8), g.Byte())
	if c.Size() > 0 {
		c.SetIndex(0, c.Index(0)+1)
	}
	return agree("clone-source", s, b)
}

func checkMove(g *Gen) error {
	b := g.Bytes()
	src := sso.FromBytes(b)
	dst := src.Move()
	if err := agree("move", dst, b); err != nil {
		return err
	}
	if err := agree("move-source", src, nil); err != nil {
		return err
	}
	if !src.IsInline() {
		return mismatch("move-source", "moved-from value is not inline")
	}

	other := sso.FromBytes(g.Bytes())
	other.MoveFrom(dst)
	if err := agree("move-from", other, b); err != nil {
		return err
	}
	return agree("move-from-source", dst, nil)
}

func checkSwap(g *Gen) error {
	x, y := g.Bytes(), g.Bytes()
	a, b := sso.FromBytes(x), sso.FromBytes(y)
	a.Swap(b)
	return firstErr(agree("swap-left", a, y), agree("swap-right", b, x))
}

func checkAssign(g *Gen) error {
	initial, next := g.Bytes(), g.Bytes()

	s := sso.FromBytes(initial)
	s.Reserve(g.Length())
	before := s.Cap()
	if g.Bool() {
		s.Assign(next)
	} else {
		s.AssignString(string(next))
	}
	if err := agree("assign", s, next); err != nil {
		return err
	}
	want := before
	if len(next) > before {
		want = exactCap(len(next))
	}
	if err := expectCap("assign", s, want); err != nil {
		return err
	}

	copied := g.Bytes()
	src := sso.FromBytes(copied)
	s.CopyFrom(src)
	if err := agree("copy-from", s, copied); err != nil {
		return err
	}
	for i := 0; i < src.Size(); i++ {
		src.SetIndex(i, '#')
	}
	return agree("copy-from-independent", s, copied)
}

func checkAt(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	i := g.Pos(len(b))
	c, err := s.At(i)
	if i < len(b) {
		if err != nil || c != b[i] {
			return mismatch("at", "At(%d) = %q, %v; want %q", i, c, err, b[i])
		}
		v := g.Byte()
		if err := s.SetAt(i, v); err != nil {
			return mismatch("set-at", "unexpected error %v", err)
		}
		b[i] = v
		return agree("set-at", s, b)
	}
	return expectOutOfRange("at", err)
}

func checkIndex(g *Gen) error {
	b := g.Bytes()
	if len(b) == 0 {
		return nil
	}
	s := sso.FromBytes(b)

	if s.Front() != b[0] || s.Back() != b[len(b)-1] {
		return mismatch("front-back", "got %q/%q, want %q/%q", s.Front(), s.Back(), b[0], b[len(b)-1])
	}
	i := g.IntN(len(b))
	if s.Index(i) != b[i] {
		return mismatch("index", "Index(%d) = %q, want %q", i, s.Index(i), b[i])
	}
	v := g.Byte()
	s.SetIndex(i, v)
	b[i] = v
	return agree("set-index", s, b)
}

func checkIterate(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	var forward []byte
	for i, c := range s.All() {
		if i != len(forward) {
			return mismatch("iterate", "position %d, want %d", i, len(forward))
		}
		forward = append(forward, c)
	}
	if !bytes.Equal(forward, b) {
		return mismatch("iterate", "forward %q, want %q", forward, b)
	}

	var backward []byte
	for _, c := range s.Backward() {
		backward = append(backward, c)
	}
	reversed := slices.Clone(b)
	slices.Reverse(reversed)
	if !bytes.Equal(backward, reversed) {
		return mismatch("iterate", "backward %q, want %q", backward, reversed)
	}
	return nil
}

func checkReserve(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	before := s.Cap()

	n := g.IntN(3*g.maxLength + 1)
	s.Reserve(n)
	want := before
	if n > before {
		want = n
	}
	return firstErr(agree("reserve", s, b), expectCap("reserve", s, want))
}

func checkShrink(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	s.Reserve(g.IntN(3*g.maxLength + 1))

	s.ShrinkToFit()
	if err := firstErr(agree("shrink", s, b), expectCap("shrink", s, exactCap(len(b)))); err != nil {
		return err
	}
	s.ShrinkToFit()
	return expectCap("shrink-twice", s, exactCap(len(b)))
}

func checkClear(g *Gen) error {
	s := sso.FromBytes(g.Bytes())
	before := s.Cap()
	s.Clear()
	if err := firstErr(agree("clear", s, nil), expectCap("clear", s, before)); err != nil {
		return err
	}
	s.Clear()
	return agree("clear-twice", s, nil)
}

func checkInsert(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	before := s.Cap()

	pos := g.Pos(len(b))
	ins := g.Bytes()
	if g.Bool() {
		s.Insert(pos, ins)
	} else {
		s.InsertString(pos, string(ins))
	}

	want := slices.Insert(slices.Clone(b), pos, ins...)
	return firstErr(agree("insert", s, want), expectCap("insert", s, grownCap(before, len(want))))
}

func checkInsertFill(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	before := s.Cap()

	pos := g.Pos(len(b))
	count := g.IntN(g.maxLength + 1)
	c := g.Byte()
	s.InsertFill(pos, count, c)

	want := slices.Insert(slices.Clone(b), pos, bytes.Repeat([]byte{c}, count)...)
	return firstErr(agree("insert-fill", s, want), expectCap("insert-fill", s, grownCap(before, len(want))))
}

func checkErase(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	before := s.Cap()

	index := g.Pos(len(b))
	count := g.Count()
	if err := expectNoError("erase", s.Erase(index, count)); err != nil {
		return err
	}
	end := index + clip(count, len(b)-index)
	want := concat(b[:index], b[end:])
	return firstErr(agree("erase", s, want), expectCap("erase", s, before))
}

func checkEraseRange(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	first := g.Pos(len(b))
	last := first + g.Pos(len(b)-first)
	if got := s.EraseRange(first, last); got != first {
		return mismatch("erase-range", "returned %d, want %d", got, first)
	}
	want := concat(b[:first], b[last:])
	if err := agree("erase-range", s, want); err != nil {
		return err
	}

	if len(want) == 0 {
		return nil
	}
	at := g.IntN(len(want))
	if got := s.EraseAt(at); got != at {
		return mismatch("erase-at", "returned %d, want %d", got, at)
	}
	return agree("erase-at", s, concat(want[:at], want[at+1:]))
}

func checkPushPop(g *Gen) error {
	ref := g.Bytes()
	s := sso.FromBytes(ref)

	steps := g.IntN(2*g.maxLength + 1)
	for i := 0; i < steps; i++ {
		if len(ref) > 0 && g.IntN(4) == 0 {
			s.PopBack()
			ref = ref[:len(ref)-1]
		} else {
			before := s.Cap()
			c := g.Byte()
			s.PushBack(c)
			ref = append(ref, c)
			if err := expectCap("push-back", s, grownCap(before, len(ref))); err != nil {
				return err
			}
		}
		if err := agree("push-pop", s, ref); err != nil {
			return err
		}
	}
	return nil
}

func checkAppend(g *Gen) error {
	ref := g.Bytes()
	s := sso.FromBytes(ref)

	for steps := g.IntN(6); steps >= 0; steps-- {
		before := s.Cap()
		switch g.IntN(4) {
		case 0:
			b := g.Bytes()
			s.Append(b)
			ref = append(ref, b...)
		case 1:
			b := g.Bytes()
			s.AppendString(string(b))
			ref = append(ref, b...)
		case 2:
			count, c := g.IntN(g.maxLength+1), g.Byte()
			s.AppendFill(count, c)
			ref = append(ref, bytes.Repeat([]byte{c}, count)...)
		default:
			view := s.View()
			s.Append(view)
			ref = append(ref, ref...)
		}
		if err := firstErr(agree("append", s, ref), expectCap("append", s, grownCap(before, len(ref)))); err != nil {
			return err
		}
	}
	return nil
}

func checkWrite(g *Gen) error {
	var s sso.String
	var ref bytes.Buffer

	for steps := g.IntN(8); steps >= 0; steps-- {
		b := g.Bytes()
		switch g.IntN(3) {
		case 0:
			n, err := s.Write(b)
			if n != len(b) || err != nil {
				return mismatch("write", "Write() = %d, %v", n, err)
			}
			ref.Write(b)
		case 1:
			n, err := s.WriteString(string(b))
			if n != len(b) || err != nil {
				return mismatch("write-string", "WriteString() = %d, %v", n, err)
			}
			ref.WriteString(string(b))
		default:
			c := g.Byte()
			if err := s.WriteByte(c); err != nil {
				return mismatch("write-byte", "WriteByte() = %v", err)
			}
			ref.WriteByte(c)
		}
		if err := agree("write", &s, ref.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// affix returns either a true prefix or suffix of b or unrelated content
func affix(g *Gen, b []byte, suffix bool) []byte {
	if g.Bool() {
		return g.Bytes()
	}
	n := g.Pos(len(b))
	if suffix {
		return slices.Clone(b[len(b)-n:])
	}
	return slices.Clone(b[:n])
}

func checkStartsWith(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	p := affix(g, b, false)
	want := bytes.HasPrefix(b, p)

	if s.StartsWithBytes(p) != want || s.StartsWithString(string(p)) != want || s.StartsWith(sso.FromBytes(p)) != want {
		return mismatch("starts-with", "disagree on prefix %q of %q, want %v", p, b, want)
	}
	c := g.Byte()
	if s.StartsWithByte(c) != (len(b) > 0 && b[0] == c) {
		return mismatch("starts-with-byte", "disagree on %q for %q", c, b)
	}
	return nil
}

func checkEndsWith(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	p := affix(g, b, true)
	want := bytes.HasSuffix(b, p)

	if s.EndsWithBytes(p) != want || s.EndsWithString(string(p)) != want || s.EndsWith(sso.FromBytes(p)) != want {
		return mismatch("ends-with", "disagree on suffix %q of %q, want %v", p, b, want)
	}
	c := g.Byte()
	if s.EndsWithByte(c) != (len(b) > 0 && b[len(b)-1] == c) {
		return mismatch("ends-with-byte", "disagree on %q for %q", c, b)
	}
	return nil
}

func checkSubstr(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	pos := g.Pos(len(b))
	count := g.Count()
	sub, err := s.Substr(pos, count)
	if err := expectNoError("substr", err); err != nil {
		return err
	}
	want := b[pos : pos+clip(count, len(b)-pos)]
	if err := firstErr(agree("substr", sub, want), expectCap("substr", sub, exactCap(len(want)))); err != nil {
		return err
	}

	whole, err := s.Substr(0, len(b))
	if err := expectNoError("substr-whole", err); err != nil {
		return err
	}
	return agree("substr-whole", whole, b)
}

func checkCopy(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	pos := g.Pos(len(b))
	count := g.Count()
	dst := make([]byte, g.Length())
	n, err := s.CopyTo(dst, count, pos)
	if err := expectNoError("copy", err); err != nil {
		return err
	}
	want := b[pos : pos+clip(clip(count, len(b)-pos), len(dst))]
	if !bytes.Equal(dst[:n], want) {
		return mismatch("copy", "copied %q, want %q", dst[:n], want)
	}
	return nil
}

func checkResize(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	before := s.Cap()

	n := g.Length()
	var c byte
	if g.Bool() {
		c = g.Byte()
		s.ResizeFill(n, c)
	} else {
		s.Resize(n)
	}

	want := slices.Clone(b)
	if n <= len(want) {
		want = want[:n]
	} else {
		want = append(want, bytes.Repeat([]byte{c}, n-len(want))...)
	}
	wantCap := before
	if n > before {
		wantCap = n
	}
	return firstErr(agree("resize", s, want), expectCap("resize", s, wantCap))
}

func checkConcat(g *Gen) error {
	x, y := g.Bytes(), g.Bytes()
	a, b := sso.FromBytes(x), sso.FromBytes(y)
	c := g.Byte()

	cases := []struct {
		op   string
		got  *sso.String
		want []byte
	}{
		{"add", sso.Add(a, b), concat(x, y)},
		{"add-bytes", sso.AddBytes(a, y), concat(x, y)},
		{"add-string", sso.AddString(a, string(y)), concat(x, y)},
		{"bytes-add", sso.BytesAdd(y, a), concat(y, x)},
		{"string-add", sso.StringAdd(string(y), a), concat(y, x)},
		{"add-byte", sso.AddByte(a, c), concat(x, []byte{c})},
		{"byte-add", sso.ByteAdd(c, a), concat([]byte{c}, x)},
	}
	for _, tc := range cases {
		if err := firstErr(agree(tc.op, tc.got, tc.want), expectCap(tc.op, tc.got, exactCap(len(tc.want)))); err != nil {
			return err
		}
	}
	return firstErr(agree("concat-left", a, x), agree("concat-right", b, y))
}

func checkConcatOwned(g *Gen) error {
	x, y := g.Bytes(), g.Bytes()
	c := g.Byte()

	cases := []struct {
		op   string
		run  func(a *sso.String) *sso.String
		want []byte
	}{
		{"add-owned", func(a *sso.String) *sso.String { return sso.AddOwned(a, sso.FromBytes(y)) }, concat(x, y)},
		{"add-bytes-owned", func(a *sso.String) *sso.String { return sso.AddBytesOwned(a, y) }, concat(x, y)},
		{"add-string-owned", func(a *sso.String) *sso.String { return sso.AddStringOwned(a, string(y)) }, concat(x, y)},
		{"bytes-add-owned", func(a *sso.String) *sso.String { return sso.BytesAddOwned(y, a) }, concat(y, x)},
		{"string-add-owned", func(a *sso.String) *sso.String { return sso.StringAddOwned(string(y), a) }, concat(y, x)},
		{"add-byte-owned", func(a *sso.String) *sso.String { return sso.AddByteOwned(a, c) }, concat(x, []byte{c})},
		{"byte-add-owned", func(a *sso.String) *sso.String { return sso.ByteAddOwned(c, a) }, concat([]byte{c}, x)},
	}
	for _, tc := range cases {
		a := sso.FromBytes(x)
		before := a.Cap()
		got := tc.run(a)
		if got != a {
			return mismatch(tc.op, "result is not the consumed operand")
		}
		if err := firstErr(agree(tc.op, got, tc.want), expectCap(tc.op, got, grownCap(before, len(tc.want)))); err != nil {
			return err
		}
	}
	return nil
}

func checkCompare(g *Gen) error {
	x := g.Bytes()
	y := g.Bytes()
	if g.IntN(4) == 0 {
		y = slices.Clone(x)
	}
	a, b := sso.FromBytes(x), sso.FromBytes(y)
	want := bytes.Compare(x, y)

	if got := a.Compare(b); got != want {
		return mismatch("compare", "Compare(%q, %q) = %d, want %d", x, y, got, want)
	}
	if got := a.CompareBytes(y); got != want {
		return mismatch("compare-bytes", "got %d, want %d", got, want)
	}
	if got := a.CompareString(string(y)); got != want {
		return mismatch("compare-string", "got %d, want %d", got, want)
	}
	eq := want == 0
	if a.Equal(b) != eq || a.EqualBytes(y) != eq || a.EqualString(string(y)) != eq {
		return mismatch("equal", "disagree on %q == %q", x, y)
	}
	return nil
}

func checkWriteTo(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil || n != int64(len(b)) {
		return mismatch("write-to", "WriteTo() = %d, %v", n, err)
	}
	if !bytes.Equal(buf.Bytes(), b) {
		return mismatch("write-to", "wrote %q, want %q", buf.Bytes(), b)
	}
	return nil
}

func checkOutOfRange(g *Gen) error {
	b := g.Bytes()
	s := sso.FromBytes(b)
	beyond := g.Beyond(len(b))

	_, atErr := s.At(len(b))
	_, subErr := s.Substr(beyond, g.Count())
	_, copyErr := s.CopyTo(make([]byte, 4), g.Count(), beyond)

	if err := firstErr(
		expectOutOfRange("at", atErr),
		expectOutOfRange("set-at", s.SetAt(beyond, 'x')),
		expectOutOfRange("substr", subErr),
		expectOutOfRange("copy", copyErr),
		expectOutOfRange("erase", s.Erase(beyond, g.Count())),
	); err != nil {
		return err
	}

	atEnd, err := s.Substr(len(b), g.Count())
	if err := expectNoError("substr-at-size", err); err != nil {
		return err
	}
	if err := agree("substr-at-size", atEnd, nil); err != nil {
		return err
	}
	return agree("out-of-range", s, b)
}
