package parser

import "github.com/eaburns/peggy/peg"

const (
	_Sheet        int = 0
	_Line         int = 1
	_CallEOF      int = 2
	_Call         int = 3
	_Ident        int = 4
	_SignatureEOF int = 5
	_Signature    int = 6
	_TypeEOF      int = 7
	_Types        int = 8
	_Type         int = 9
	_TupleType    int = 10
	_NamedType    int = 11
	_Name         int = 12
	__            int = 13
	_EOF          int = 14

	_N int = 15
)

type _Parser struct {
	text     string
	deltaPos [][_N]int32
	deltaErr [][_N]int32
	node     map[_key]*peg.Node
	fail     map[_key]*peg.Fail
	act      map[_key]interface{}
	lastFail int
	data     interface{}
}

type _key struct {
	start int
	rule  int
}

func _NewParser(text string) *_Parser {
	return &_Parser{
		text:     text,
		deltaPos: make([][_N]int32, len(text)+1),
		deltaErr: make([][_N]int32, len(text)+1),
		node:     make(map[_key]*peg.Node),
		fail:     make(map[_key]*peg.Fail),
		act:      make(map[_key]interface{}),
	}
}

func _max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func _memoize(parser *_Parser, rule, start, pos, perr int) (int, int) {
	parser.lastFail = perr
	derr := perr - start
	parser.deltaErr[start][rule] = int32(derr + 1)
	if pos >= 0 {
		dpos := pos - start
		parser.deltaPos[start][rule] = int32(dpos + 1)
		return dpos, derr
	}
	parser.deltaPos[start][rule] = -1
	return -1, derr
}

func _memo(parser *_Parser, rule, start int) (int, int, bool) {
	dp := parser.deltaPos[start][rule]
	if dp == 0 {
		return 0, 0, false
	}
	if dp > 0 {
		dp--
	}
	de := parser.deltaErr[start][rule] - 1
	return int(dp), int(de), true
}

func _failMemo(parser *_Parser, rule, start, errPos int) (int, *peg.Fail) {
	if start > parser.lastFail {
		return -1, &peg.Fail{}
	}
	dp := parser.deltaPos[start][rule]
	de := parser.deltaErr[start][rule]
	if start+int(de-1) < errPos {
		if dp > 0 {
			return start + int(dp-1), &peg.Fail{}
		}
		return -1, &peg.Fail{}
	}
	f := parser.fail[_key{start: start, rule: rule}]
	if dp < 0 && f != nil {
		return -1, f
	}
	if dp > 0 && f != nil {
		return start + int(dp-1), f
	}
	return start, nil
}

func _accept(parser *_Parser, f func(*_Parser, int) (int, int), pos, perr *int) bool {
	dp, de := f(parser, *pos)
	*perr = _max(*perr, *pos+de)
	if dp < 0 {
		return false
	}
	*pos += dp
	return true
}

func _node(parser *_Parser, f func(*_Parser, int) (int, *peg.Node), node *peg.Node, pos *int) bool {
	p, kid := f(parser, *pos)
	if kid == nil {
		return false
	}
	node.Kids = append(node.Kids, kid)
	*pos = p
	return true
}

func _fail(parser *_Parser, f func(*_Parser, int, int) (int, *peg.Fail), errPos int, node *peg.Fail, pos *int) bool {
	p, kid := f(parser, *pos, errPos)
	if kid.Want != "" || len(kid.Kids) > 0 {
		node.Kids = append(node.Kids, kid)
	}
	if p < 0 {
		return false
	}
	*pos = p
	return true
}

func _next(parser *_Parser, pos int) (rune, int) {
	r, w := peg.DecodeRuneInString(parser.text[pos:])
	return r, w
}

func _sub(parser *_Parser, start, end int, kids []*peg.Node) *peg.Node {
	node := &peg.Node{
		Text: parser.text[start:end],
		Kids: make([]*peg.Node, len(kids)),
	}
	copy(node.Kids, kids)
	return node
}

func _leaf(parser *_Parser, start, end int) *peg.Node {
	return &peg.Node{Text: parser.text[start:end]}
}

// A no-op function to mark a variable as used.
func use(interface{}) {}

func _SheetAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Sheet, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// c0:Line cs:(_ "\n" c1:Line {…})* _ EOF
	// c0:Line
	{
		pos1 := pos
		// Line
		if !_accept(parser, _LineAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// cs:(_ "\n" c1:Line {…})*
	{
		pos2 := pos
		// (_ "\n" c1:Line {…})*
		for {
			pos4 := pos
			// (_ "\n" c1:Line {…})
			// action
			// _ "\n" c1:Line
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// c1:Line
			{
				pos8 := pos
				// Line
				if !_accept(parser, _LineAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _Sheet, start, pos, perr)
fail:
	return _memoize(parser, _Sheet, start, -1, perr)
}

func _SheetFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Sheet, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Sheet",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Sheet}
	// action
	// c0:Line cs:(_ "\n" c1:Line {…})* _ EOF
	// c0:Line
	{
		pos1 := pos
		// Line
		if !_fail(parser, _LineFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// cs:(_ "\n" c1:Line {…})*
	{
		pos2 := pos
		// (_ "\n" c1:Line {…})*
		for {
			pos4 := pos
			// (_ "\n" c1:Line {…})
			// action
			// _ "\n" c1:Line
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// "\n"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"\\n\"",
					})
				}
				goto fail6
			}
			pos++
			// c1:Line
			{
				pos8 := pos
				// Line
				if !_fail(parser, _LineFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SheetAction(parser *_Parser, start int) (int, *[]*Call) {
	var labels [3]string
	use(labels)
	var label0 []*Call
	var label1 []*Call
	var label2 [][]*Call
	dp := parser.deltaPos[start][_Sheet]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Sheet}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Call)
		return start + int(dp-1), &n
	}
	var node []*Call
	pos := start
	// action
	{
		start0 := pos
		// c0:Line cs:(_ "\n" c1:Line {…})* _ EOF
		// c0:Line
		{
			pos2 := pos
			// Line
			if p, n := _LineAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// cs:(_ "\n" c1:Line {…})*
		{
			pos3 := pos
			// (_ "\n" c1:Line {…})*
			for {
				pos5 := pos
				var node6 []*Call
				// (_ "\n" c1:Line {…})
				// action
				{
					start8 := pos
					// _ "\n" c1:Line
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// "\n"
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "\n" {
						goto fail7
					}
					pos++
					// c1:Line
					{
						pos10 := pos
						// Line
						if p, n := _LineAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, c0 []*Call, c1 []*Call) []*Call {
						return []*Call(c1)
					}(
						start8, pos, label0, label1)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, c0 []*Call, c1 []*Call, cs [][]*Call) []*Call {
			return []*Call(lines(c0, cs))
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _LineAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Line, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// c:Call?
	{
		pos0 := pos
		// Call?
		{
			pos2 := pos
			// Call
			if !_accept(parser, _CallAccepts, &pos, &perr) {
				goto fail3
			}
			goto ok4
		fail3:
			pos = pos2
		ok4:
		}
		labels[0] = parser.text[pos0:pos]
	}
	return _memoize(parser, _Line, start, pos, perr)
}

func _LineFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Line, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Line",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Line}
	// action
	// c:Call?
	{
		pos0 := pos
		// Call?
		{
			pos2 := pos
			// Call
			if !_fail(parser, _CallFail, errPos, failure, &pos) {
				goto fail3
			}
			goto ok4
		fail3:
			pos = pos2
		ok4:
		}
		labels[0] = parser.text[pos0:pos]
	}
	parser.fail[key] = failure
	return pos, failure
}

func _LineAction(parser *_Parser, start int) (int, *[]*Call) {
	var labels [1]string
	use(labels)
	var label0 **Call
	dp := parser.deltaPos[start][_Line]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Line}
	n := parser.act[key]
	if n != nil {
		n := n.([]*Call)
		return start + int(dp-1), &n
	}
	var node []*Call
	pos := start
	// action
	{
		start0 := pos
		// c:Call?
		{
			pos1 := pos
			// Call?
			{
				pos3 := pos
				label0 = new(*Call)
				// Call
				if p, n := _CallAction(parser, pos); n == nil {
					goto fail4
				} else {
					*label0 = *n
					pos = p
				}
				goto ok5
			fail4:
				label0 = nil
				pos = pos3
			ok5:
			}
			labels[0] = parser.text[pos1:pos]
		}
		node = func(
			start, end int, c **Call) []*Call {
			return []*Call(optCall(c))
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
}

func _CallEOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _CallEOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// c:Call _ EOF
	// c:Call
	{
		pos1 := pos
		// Call
		if !_accept(parser, _CallAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _CallEOF, start, pos, perr)
fail:
	return _memoize(parser, _CallEOF, start, -1, perr)
}

func _CallEOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _CallEOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "CallEOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _CallEOF}
	// action
	// c:Call _ EOF
	// c:Call
	{
		pos1 := pos
		// Call
		if !_fail(parser, _CallFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallEOFAction(parser *_Parser, start int) (int, *(*Call)) {
	var labels [1]string
	use(labels)
	var label0 *Call
	dp := parser.deltaPos[start][_CallEOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _CallEOF}
	n := parser.act[key]
	if n != nil {
		n := n.((*Call))
		return start + int(dp-1), &n
	}
	var node (*Call)
	pos := start
	// action
	{
		start0 := pos
		// c:Call _ EOF
		// c:Call
		{
			pos2 := pos
			// Call
			if p, n := _CallAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, c *Call) *Call {
			return (*Call)(c)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _CallAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Call, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// f:Ident _ "(" as:Types? _ ")"
	// f:Ident
	{
		pos1 := pos
		// Ident
		if !_accept(parser, _IdentAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// as:Types?
	{
		pos2 := pos
		// Types?
		{
			pos4 := pos
			// Types
			if !_accept(parser, _TypesAccepts, &pos, &perr) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Call, start, pos, perr)
fail:
	return _memoize(parser, _Call, start, -1, perr)
}

func _CallFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Call, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Call",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Call}
	// action
	// f:Ident _ "(" as:Types? _ ")"
	// f:Ident
	{
		pos1 := pos
		// Ident
		if !_fail(parser, _IdentFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// as:Types?
	{
		pos2 := pos
		// Types?
		{
			pos4 := pos
			// Types
			if !_fail(parser, _TypesFail, errPos, failure, &pos) {
				goto fail5
			}
			goto ok6
		fail5:
			pos = pos4
		ok6:
		}
		labels[1] = parser.text[pos2:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _CallAction(parser *_Parser, start int) (int, **Call) {
	var labels [2]string
	use(labels)
	var label0 Ident
	var label1 *[]Type
	dp := parser.deltaPos[start][_Call]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Call}
	n := parser.act[key]
	if n != nil {
		n := n.(*Call)
		return start + int(dp-1), &n
	}
	var node *Call
	pos := start
	// action
	{
		start0 := pos
		// f:Ident _ "(" as:Types? _ ")"
		// f:Ident
		{
			pos2 := pos
			// Ident
			if p, n := _IdentAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// as:Types?
		{
			pos3 := pos
			// Types?
			{
				pos5 := pos
				label1 = new([]Type)
				// Types
				if p, n := _TypesAction(parser, pos); n == nil {
					goto fail6
				} else {
					*label1 = *n
					pos = p
				}
				goto ok7
			fail6:
				label1 = nil
				pos = pos5
			ok7:
			}
			labels[1] = parser.text[pos3:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, as *[]Type, f Ident) *Call {
			return &Call{Fun: f, Args: types(as), L: l(parser, start, end)}
		}(
			start0, pos, label1, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _IdentAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _Ident, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ n:(Name ("." Name)*)
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// n:(Name ("." Name)*)
	{
		pos1 := pos
		// (Name ("." Name)*)
		// Name ("." Name)*
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		// ("." Name)*
		for {
			pos4 := pos
			// ("." Name)
			// "." Name
			// "."
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// Name
			if !_accept(parser, _NameAccepts, &pos, &perr) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _Ident, start, pos, perr)
fail:
	return _memoize(parser, _Ident, start, -1, perr)
}

func _IdentFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _Ident, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Ident",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Ident}
	// action
	// _ n:(Name ("." Name)*)
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// n:(Name ("." Name)*)
	{
		pos1 := pos
		// (Name ("." Name)*)
		// Name ("." Name)*
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		// ("." Name)*
		for {
			pos4 := pos
			// ("." Name)
			// "." Name
			// "."
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\".\"",
					})
				}
				goto fail6
			}
			pos++
			// Name
			if !_fail(parser, _NameFail, errPos, failure, &pos) {
				goto fail6
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _IdentAction(parser *_Parser, start int) (int, *Ident) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_Ident]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Ident}
	n := parser.act[key]
	if n != nil {
		n := n.(Ident)
		return start + int(dp-1), &n
	}
	var node Ident
	pos := start
	// action
	{
		start0 := pos
		// _ n:(Name ("." Name)*)
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// n:(Name ("." Name)*)
		{
			pos2 := pos
			// (Name ("." Name)*)
			// Name ("." Name)*
			{
				var node3 string
				// Name
				if p, n := _NameAction(parser, pos); n == nil {
					goto fail
				} else {
					node3 = *n
					pos = p
				}
				label0, node3 = label0+node3, ""
				// ("." Name)*
				for {
					pos5 := pos
					var node6 string
					// ("." Name)
					// "." Name
					{
						var node8 string
						// "."
						if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "." {
							goto fail7
						}
						node8 = parser.text[pos : pos+1]
						pos++
						node6, node8 = node6+node8, ""
						// Name
						if p, n := _NameAction(parser, pos); n == nil {
							goto fail7
						} else {
							node8 = *n
							pos = p
						}
						node6, node8 = node6+node8, ""
					}
					node3 += node6
					continue
				fail7:
					pos = pos5
					break
				}
				label0, node3 = label0+node3, ""
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, n string) Ident {
			return Ident{Name: n, L: l(parser, start, end)}
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SignatureEOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _SignatureEOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// s:Signature _ EOF
	// s:Signature
	{
		pos1 := pos
		// Signature
		if !_accept(parser, _SignatureAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _SignatureEOF, start, pos, perr)
fail:
	return _memoize(parser, _SignatureEOF, start, -1, perr)
}

func _SignatureEOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _SignatureEOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "SignatureEOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _SignatureEOF}
	// action
	// s:Signature _ EOF
	// s:Signature
	{
		pos1 := pos
		// Signature
		if !_fail(parser, _SignatureFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SignatureEOFAction(parser *_Parser, start int) (int, *(*Signature)) {
	var labels [1]string
	use(labels)
	var label0 *Signature
	dp := parser.deltaPos[start][_SignatureEOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _SignatureEOF}
	n := parser.act[key]
	if n != nil {
		n := n.((*Signature))
		return start + int(dp-1), &n
	}
	var node (*Signature)
	pos := start
	// action
	{
		start0 := pos
		// s:Signature _ EOF
		// s:Signature
		{
			pos2 := pos
			// Signature
			if p, n := _SignatureAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, s *Signature) *Signature {
			return (*Signature)(s)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _SignatureAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [2]string
	use(labels)
	if dp, de, ok := _memo(parser, _Signature, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "(" ps:Types? _ ")" _ "{" r:Type _ "}"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// ps:Types?
	{
		pos1 := pos
		// Types?
		{
			pos3 := pos
			// Types
			if !_accept(parser, _TypesAccepts, &pos, &perr) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// r:Type
	{
		pos6 := pos
		// Type
		if !_accept(parser, _TypeAccepts, &pos, &perr) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _Signature, start, pos, perr)
fail:
	return _memoize(parser, _Signature, start, -1, perr)
}

func _SignatureFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [2]string
	use(labels)
	pos, failure := _failMemo(parser, _Signature, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Signature",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Signature}
	// action
	// _ "(" ps:Types? _ ")" _ "{" r:Type _ "}"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// ps:Types?
	{
		pos1 := pos
		// Types?
		{
			pos3 := pos
			// Types
			if !_fail(parser, _TypesFail, errPos, failure, &pos) {
				goto fail4
			}
			goto ok5
		fail4:
			pos = pos3
		ok5:
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "{"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"{\"",
			})
		}
		goto fail
	}
	pos++
	// r:Type
	{
		pos6 := pos
		// Type
		if !_fail(parser, _TypeFail, errPos, failure, &pos) {
			goto fail
		}
		labels[1] = parser.text[pos6:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "}"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"}\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _SignatureAction(parser *_Parser, start int) (int, **Signature) {
	var labels [2]string
	use(labels)
	var label0 *[]Type
	var label1 Type
	dp := parser.deltaPos[start][_Signature]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Signature}
	n := parser.act[key]
	if n != nil {
		n := n.(*Signature)
		return start + int(dp-1), &n
	}
	var node *Signature
	pos := start
	// action
	{
		start0 := pos
		// _ "(" ps:Types? _ ")" _ "{" r:Type _ "}"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// ps:Types?
		{
			pos2 := pos
			// Types?
			{
				pos4 := pos
				label0 = new([]Type)
				// Types
				if p, n := _TypesAction(parser, pos); n == nil {
					goto fail5
				} else {
					*label0 = *n
					pos = p
				}
				goto ok6
			fail5:
				label0 = nil
				pos = pos4
			ok6:
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "{"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "{" {
			goto fail
		}
		pos++
		// r:Type
		{
			pos7 := pos
			// Type
			if p, n := _TypeAction(parser, pos); n == nil {
				goto fail
			} else {
				label1 = *n
				pos = p
			}
			labels[1] = parser.text[pos7:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "}"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "}" {
			goto fail
		}
		pos++
		node = func(
			start, end int, ps *[]Type, r Type) *Signature {
			return &Signature{Parms: types(ps), Ret: r, L: l(parser, start, end)}
		}(
			start0, pos, label0, label1)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypeEOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _TypeEOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// t:Type _ EOF
	// t:Type
	{
		pos1 := pos
		// Type
		if !_accept(parser, _TypeAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// EOF
	if !_accept(parser, _EOFAccepts, &pos, &perr) {
		goto fail
	}
	return _memoize(parser, _TypeEOF, start, pos, perr)
fail:
	return _memoize(parser, _TypeEOF, start, -1, perr)
}

func _TypeEOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _TypeEOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TypeEOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TypeEOF}
	// action
	// t:Type _ EOF
	// t:Type
	{
		pos1 := pos
		// Type
		if !_fail(parser, _TypeFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// EOF
	if !_fail(parser, _EOFFail, errPos, failure, &pos) {
		goto fail
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TypeEOFAction(parser *_Parser, start int) (int, *Type) {
	var labels [1]string
	use(labels)
	var label0 Type
	dp := parser.deltaPos[start][_TypeEOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TypeEOF}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// action
	{
		start0 := pos
		// t:Type _ EOF
		// t:Type
		{
			pos2 := pos
			// Type
			if p, n := _TypeAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// EOF
		if p, n := _EOFAction(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		node = func(
			start, end int, t Type) Type {
			return Type(t)
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypesAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [3]string
	use(labels)
	if dp, de, ok := _memo(parser, _Types, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// t0:Type ts:(_ "," t1:Type {…})*
	// t0:Type
	{
		pos1 := pos
		// Type
		if !_accept(parser, _TypeAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ts:(_ "," t1:Type {…})*
	{
		pos2 := pos
		// (_ "," t1:Type {…})*
		for {
			pos4 := pos
			// (_ "," t1:Type {…})
			// action
			// _ "," t1:Type
			// _
			if !_accept(parser, __Accepts, &pos, &perr) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				perr = _max(perr, pos)
				goto fail6
			}
			pos++
			// t1:Type
			{
				pos8 := pos
				// Type
				if !_accept(parser, _TypeAccepts, &pos, &perr) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	return _memoize(parser, _Types, start, pos, perr)
fail:
	return _memoize(parser, _Types, start, -1, perr)
}

func _TypesFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [3]string
	use(labels)
	pos, failure := _failMemo(parser, _Types, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Types",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Types}
	// action
	// t0:Type ts:(_ "," t1:Type {…})*
	// t0:Type
	{
		pos1 := pos
		// Type
		if !_fail(parser, _TypeFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// ts:(_ "," t1:Type {…})*
	{
		pos2 := pos
		// (_ "," t1:Type {…})*
		for {
			pos4 := pos
			// (_ "," t1:Type {…})
			// action
			// _ "," t1:Type
			// _
			if !_fail(parser, __Fail, errPos, failure, &pos) {
				goto fail6
			}
			// ","
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\",\"",
					})
				}
				goto fail6
			}
			pos++
			// t1:Type
			{
				pos8 := pos
				// Type
				if !_fail(parser, _TypeFail, errPos, failure, &pos) {
					goto fail6
				}
				labels[1] = parser.text[pos8:pos]
			}
			continue
		fail6:
			pos = pos4
			break
		}
		labels[2] = parser.text[pos2:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TypesAction(parser *_Parser, start int) (int, *[]Type) {
	var labels [3]string
	use(labels)
	var label0 Type
	var label1 Type
	var label2 []Type
	dp := parser.deltaPos[start][_Types]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Types}
	n := parser.act[key]
	if n != nil {
		n := n.([]Type)
		return start + int(dp-1), &n
	}
	var node []Type
	pos := start
	// action
	{
		start0 := pos
		// t0:Type ts:(_ "," t1:Type {…})*
		// t0:Type
		{
			pos2 := pos
			// Type
			if p, n := _TypeAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// ts:(_ "," t1:Type {…})*
		{
			pos3 := pos
			// (_ "," t1:Type {…})*
			for {
				pos5 := pos
				var node6 Type
				// (_ "," t1:Type {…})
				// action
				{
					start8 := pos
					// _ "," t1:Type
					// _
					if p, n := __Action(parser, pos); n == nil {
						goto fail7
					} else {
						pos = p
					}
					// ","
					if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "," {
						goto fail7
					}
					pos++
					// t1:Type
					{
						pos10 := pos
						// Type
						if p, n := _TypeAction(parser, pos); n == nil {
							goto fail7
						} else {
							label1 = *n
							pos = p
						}
						labels[1] = parser.text[pos10:pos]
					}
					node6 = func(
						start, end int, t0 Type, t1 Type) Type {
						return Type(t1)
					}(
						start8, pos, label0, label1)
				}
				label2 = append(label2, node6)
				continue
			fail7:
				pos = pos5
				break
			}
			labels[2] = parser.text[pos3:pos]
		}
		node = func(
			start, end int, t0 Type, t1 Type, ts []Type) []Type {
			return []Type(append([]Type{t0}, ts...))
		}(
			start0, pos, label0, label1, label2)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TypeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Type, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// TupleType/NamedType
	{
		pos3 := pos
		// TupleType
		if !_accept(parser, _TupleTypeAccepts, &pos, &perr) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// NamedType
		if !_accept(parser, _NamedTypeAccepts, &pos, &perr) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	return _memoize(parser, _Type, start, pos, perr)
fail:
	return _memoize(parser, _Type, start, -1, perr)
}

func _TypeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Type, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Type",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Type}
	// TupleType/NamedType
	{
		pos3 := pos
		// TupleType
		if !_fail(parser, _TupleTypeFail, errPos, failure, &pos) {
			goto fail4
		}
		goto ok0
	fail4:
		pos = pos3
		// NamedType
		if !_fail(parser, _NamedTypeFail, errPos, failure, &pos) {
			goto fail5
		}
		goto ok0
	fail5:
		pos = pos3
		goto fail
	ok0:
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TypeAction(parser *_Parser, start int) (int, *Type) {
	dp := parser.deltaPos[start][_Type]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Type}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// TupleType/NamedType
	{
		pos3 := pos
		var node2 Type
		// TupleType
		if p, n := _TupleTypeAction(parser, pos); n == nil {
			goto fail4
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail4:
		node = node2
		pos = pos3
		// NamedType
		if p, n := _NamedTypeAction(parser, pos); n == nil {
			goto fail5
		} else {
			node = *n
			pos = p
		}
		goto ok0
	fail5:
		node = node2
		pos = pos3
		goto fail
	ok0:
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _TupleTypeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _TupleType, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ "Tuple" _ "(" es:Types _ ")"
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "Tuple"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "Tuple" {
		perr = _max(perr, pos)
		goto fail
	}
	pos += 5
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	// es:Types
	{
		pos1 := pos
		// Types
		if !_accept(parser, _TypesAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		perr = _max(perr, pos)
		goto fail
	}
	pos++
	return _memoize(parser, _TupleType, start, pos, perr)
fail:
	return _memoize(parser, _TupleType, start, -1, perr)
}

func _TupleTypeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _TupleType, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "TupleType",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _TupleType}
	// action
	// _ "Tuple" _ "(" es:Types _ ")"
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "Tuple"
	if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "Tuple" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"Tuple\"",
			})
		}
		goto fail
	}
	pos += 5
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// "("
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\"(\"",
			})
		}
		goto fail
	}
	pos++
	// es:Types
	{
		pos1 := pos
		// Types
		if !_fail(parser, _TypesFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// ")"
	if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "\")\"",
			})
		}
		goto fail
	}
	pos++
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _TupleTypeAction(parser *_Parser, start int) (int, *Type) {
	var labels [1]string
	use(labels)
	var label0 []Type
	dp := parser.deltaPos[start][_TupleType]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _TupleType}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// action
	{
		start0 := pos
		// _ "Tuple" _ "(" es:Types _ ")"
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "Tuple"
		if len(parser.text[pos:]) < 5 || parser.text[pos:pos+5] != "Tuple" {
			goto fail
		}
		pos += 5
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// "("
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "(" {
			goto fail
		}
		pos++
		// es:Types
		{
			pos2 := pos
			// Types
			if p, n := _TypesAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// ")"
		if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != ")" {
			goto fail
		}
		pos++
		node = func(
			start, end int, es []Type) Type {
			return Type(&TupleType{Elems: es, L: l(parser, start, end)})
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NamedTypeAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	var labels [1]string
	use(labels)
	if dp, de, ok := _memo(parser, _NamedType, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// action
	// _ n:Name
	// _
	if !_accept(parser, __Accepts, &pos, &perr) {
		goto fail
	}
	// n:Name
	{
		pos1 := pos
		// Name
		if !_accept(parser, _NameAccepts, &pos, &perr) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	return _memoize(parser, _NamedType, start, pos, perr)
fail:
	return _memoize(parser, _NamedType, start, -1, perr)
}

func _NamedTypeFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	var labels [1]string
	use(labels)
	pos, failure := _failMemo(parser, _NamedType, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "NamedType",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _NamedType}
	// action
	// _ n:Name
	// _
	if !_fail(parser, __Fail, errPos, failure, &pos) {
		goto fail
	}
	// n:Name
	{
		pos1 := pos
		// Name
		if !_fail(parser, _NameFail, errPos, failure, &pos) {
			goto fail
		}
		labels[0] = parser.text[pos1:pos]
	}
	parser.fail[key] = failure
	return pos, failure
fail:
	parser.fail[key] = failure
	return -1, failure
}

func _NamedTypeAction(parser *_Parser, start int) (int, *Type) {
	var labels [1]string
	use(labels)
	var label0 string
	dp := parser.deltaPos[start][_NamedType]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _NamedType}
	n := parser.act[key]
	if n != nil {
		n := n.(Type)
		return start + int(dp-1), &n
	}
	var node Type
	pos := start
	// action
	{
		start0 := pos
		// _ n:Name
		// _
		if p, n := __Action(parser, pos); n == nil {
			goto fail
		} else {
			pos = p
		}
		// n:Name
		{
			pos2 := pos
			// Name
			if p, n := _NameAction(parser, pos); n == nil {
				goto fail
			} else {
				label0 = *n
				pos = p
			}
			labels[0] = parser.text[pos2:pos]
		}
		node = func(
			start, end int, n string) Type {
			return Type(namedType(n, l(parser, start, end)))
		}(
			start0, pos, label0)
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func _NameAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _Name, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// [a-zA-Z_] [a-zA-Z0-9_]*
	// [a-zA-Z_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
		perr = _max(perr, pos)
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_]*
	for {
		pos2 := pos
		// [a-zA-Z0-9_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			perr = _max(perr, pos)
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	perr = start
	return _memoize(parser, _Name, start, pos, perr)
fail:
	return _memoize(parser, _Name, start, -1, perr)
}

func _NameFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _Name, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "Name",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _Name}
	// [a-zA-Z_] [a-zA-Z0-9_]*
	// [a-zA-Z_]
	if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "[a-zA-Z_]",
			})
		}
		goto fail
	} else {
		pos += w
	}
	// [a-zA-Z0-9_]*
	for {
		pos2 := pos
		// [a-zA-Z0-9_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: "[a-zA-Z0-9_]",
				})
			}
			goto fail4
		} else {
			pos += w
		}
		continue
	fail4:
		pos = pos2
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "name"
	parser.fail[key] = failure
	return -1, failure
}

func _NameAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_Name]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _Name}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// [a-zA-Z_] [a-zA-Z0-9_]*
	{
		var node0 string
		// [a-zA-Z_]
		if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '_' {
			goto fail
		} else {
			node0 = parser.text[pos : pos+w]
			pos += w
		}
		node, node0 = node+node0, ""
		// [a-zA-Z0-9_]*
		for {
			pos2 := pos
			var node3 string
			// [a-zA-Z0-9_]
			if r, w := _next(parser, pos); (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '_' {
				goto fail4
			} else {
				node3 = parser.text[pos : pos+w]
				pos += w
			}
			node0 += node3
			continue
		fail4:
			pos = pos2
			break
		}
		node, node0 = node+node0, ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}

func __Accepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, __, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// ([ \t\r]/"#" [^\n]*)*
	for {
		pos1 := pos
		// ([ \t\r]/"#" [^\n]*)
		// [ \t\r]/"#" [^\n]*
		{
			pos7 := pos
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				perr = _max(perr, pos)
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// "#" [^\n]*
			// "#"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
				perr = _max(perr, pos)
				goto fail9
			}
			pos++
			// [^\n]*
			for {
				pos12 := pos
				// [^\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
					perr = _max(perr, pos)
					goto fail14
				} else {
					pos += w
				}
				continue
			fail14:
				pos = pos12
				break
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	perr = start
	return _memoize(parser, __, start, pos, perr)
}

func __Fail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, __, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "_",
		Pos:  int(start),
	}
	key := _key{start: start, rule: __}
	// ([ \t\r]/"#" [^\n]*)*
	for {
		pos1 := pos
		// ([ \t\r]/"#" [^\n]*)
		// [ \t\r]/"#" [^\n]*
		{
			pos7 := pos
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "[ \\t\\r]",
					})
				}
				goto fail8
			} else {
				pos += w
			}
			goto ok4
		fail8:
			pos = pos7
			// "#" [^\n]*
			// "#"
			if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
				if pos >= errPos {
					failure.Kids = append(failure.Kids, &peg.Fail{
						Pos:  int(pos),
						Want: "\"#\"",
					})
				}
				goto fail9
			}
			pos++
			// [^\n]*
			for {
				pos12 := pos
				// [^\n]
				if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
					if pos >= errPos {
						failure.Kids = append(failure.Kids, &peg.Fail{
							Pos:  int(pos),
							Want: "[^\\n]",
						})
					}
					goto fail14
				} else {
					pos += w
				}
				continue
			fail14:
				pos = pos12
				break
			}
			goto ok4
		fail9:
			pos = pos7
			goto fail3
		ok4:
		}
		continue
	fail3:
		pos = pos1
		break
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
}

func __Action(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][__]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: __}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// ([ \t\r]/"#" [^\n]*)*
	for {
		pos1 := pos
		var node2 string
		// ([ \t\r]/"#" [^\n]*)
		// [ \t\r]/"#" [^\n]*
		{
			pos7 := pos
			var node6 string
			// [ \t\r]
			if r, w := _next(parser, pos); r != ' ' && r != '\t' && r != '\r' {
				goto fail8
			} else {
				node2 = parser.text[pos : pos+w]
				pos += w
			}
			goto ok4
		fail8:
			node2 = node6
			pos = pos7
			// "#" [^\n]*
			{
				var node10 string
				// "#"
				if len(parser.text[pos:]) < 1 || parser.text[pos:pos+1] != "#" {
					goto fail9
				}
				node10 = parser.text[pos : pos+1]
				pos++
				node2, node10 = node2+node10, ""
				// [^\n]*
				for {
					pos12 := pos
					var node13 string
					// [^\n]
					if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' || r == '\n' {
						goto fail14
					} else {
						node13 = parser.text[pos : pos+w]
						pos += w
					}
					node10 += node13
					continue
				fail14:
					pos = pos12
					break
				}
				node2, node10 = node2+node10, ""
			}
			goto ok4
		fail9:
			node2 = node6
			pos = pos7
			goto fail3
		ok4:
		}
		node += node2
		continue
	fail3:
		pos = pos1
		break
	}
	parser.act[key] = node
	return pos, &node
}

func _EOFAccepts(parser *_Parser, start int) (deltaPos, deltaErr int) {
	if dp, de, ok := _memo(parser, _EOF, start); ok {
		return dp, de
	}
	pos, perr := start, -1
	// !.
	{
		pos1 := pos
		perr3 := perr
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			perr = _max(perr, pos)
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		perr = _max(perr3, pos)
		goto fail
	ok0:
		pos = pos1
		perr = perr3
	}
	perr = start
	return _memoize(parser, _EOF, start, pos, perr)
fail:
	return _memoize(parser, _EOF, start, -1, perr)
}

func _EOFFail(parser *_Parser, start, errPos int) (int, *peg.Fail) {
	pos, failure := _failMemo(parser, _EOF, start, errPos)
	if failure != nil {
		return pos, failure
	}
	failure = &peg.Fail{
		Name: "EOF",
		Pos:  int(start),
	}
	key := _key{start: start, rule: _EOF}
	// !.
	{
		pos1 := pos
		nkids2 := len(failure.Kids)
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			if pos >= errPos {
				failure.Kids = append(failure.Kids, &peg.Fail{
					Pos:  int(pos),
					Want: ".",
				})
			}
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
		if pos >= errPos {
			failure.Kids = append(failure.Kids, &peg.Fail{
				Pos:  int(pos),
				Want: "!.",
			})
		}
		goto fail
	ok0:
		pos = pos1
		failure.Kids = failure.Kids[:nkids2]
	}
	failure.Kids = nil
	parser.fail[key] = failure
	return pos, failure
fail:
	failure.Kids = nil
	failure.Want = "EOF"
	parser.fail[key] = failure
	return -1, failure
}

func _EOFAction(parser *_Parser, start int) (int, *string) {
	dp := parser.deltaPos[start][_EOF]
	if dp < 0 {
		return -1, nil
	}
	key := _key{start: start, rule: _EOF}
	n := parser.act[key]
	if n != nil {
		n := n.(string)
		return start + int(dp-1), &n
	}
	var node string
	pos := start
	// !.
	{
		pos1 := pos
		// .
		if r, w := _next(parser, pos); w == 0 || r == '\uFFFD' {
			goto ok0
		} else {
			pos += w
		}
		pos = pos1
		goto fail
	ok0:
		pos = pos1
		node = ""
	}
	parser.act[key] = node
	return pos, &node
fail:
	return -1, nil
}
