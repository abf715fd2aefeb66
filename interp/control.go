/*
File   : interp/control.go
Package: interp

Control-flow constructs: if/for/foreach/while produce a List of
per-iteration body values; when/once manage trigger registration and
one-shot firing; defer queues a call frame's cleanup; try/catch
snapshots and restores the current scope around a recoverable block.

if/for/foreach/while all evaluate their bodies directly in the caller's
ctx rather than a pushed child Context -- only function calls and
struct instantiation get a scope of their own (try/catch also runs in
ctx, restoring it from a snapshot on error). A for/foreach induction
variable is bound straight into ctx too, so it is visible (and survives)
after the loop exits, matching the original's ambient-context binding.
*/
package interp

import (
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/value"
)

func (it *Interpreter) evalIf(node *parser.If, ctx *context.Context) (value.Value, signal, *errors.Error) {
	for i, cond := range node.Conds {
		cv, _, err := it.eval(cond, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		if cv.IsTrue() {
			return it.eval(node.Bodies[i], ctx)
		}
	}
	if node.Else != nil {
		return it.eval(node.Else, ctx)
	}
	return value.NewNil(), sigNone, nil
}

// loopStep runs one loop-body evaluation and reports what the caller
// should do: the per-iteration value to record (possibly nil),
// whether to stop the loop, and any error/return to propagate.
func (it *Interpreter) loopStep(body parser.Node, bodyCtx *context.Context) (val value.Value, record, stop bool, outer value.Value, outerSig signal, err *errors.Error) {
	v, sig, e := it.eval(body, bodyCtx)
	if e != nil {
		return nil, false, true, nil, sigNone, e
	}
	switch sig {
	case sigBreak:
		return nil, false, true, nil, sigNone, nil
	case sigReturn:
		return nil, false, true, v, sigReturn, nil
	case sigContinue:
		return v, true, false, nil, sigNone, nil
	default:
		return v, true, false, nil, sigNone, nil
	}
}

func (it *Interpreter) evalFor(node *parser.For, ctx *context.Context) (value.Value, signal, *errors.Error) {
	startV, _, err := it.eval(node.Start, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	endV, _, err := it.eval(node.End, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	start, ok := startV.(*value.Number)
	if !ok {
		return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "for: start must be a Number")
	}
	end, ok := endV.(*value.Number)
	if !ok {
		return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "for: end must be a Number")
	}

	step := int64(1)
	if start.AsInt() > end.AsInt() {
		step = -1
	}
	if node.Step != nil {
		stepV, _, err := it.eval(node.Step, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		sn, ok := stepV.(*value.Number)
		if !ok {
			return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "for: step must be a Number")
		}
		step = sn.AsInt()
	}
	if step == 0 {
		return nil, sigNone, errors.New(errors.InvalidArgumentSet, node.Span(), "for: step must not be 0")
	}

	var results []value.Value
	for i := start.AsInt(); (step > 0 && i <= end.AsInt()) || (step < 0 && i >= end.AsInt()); i += step {
		ctx.SymbolTable.Set(node.Var, value.NewInt(i))
		val, record, stop, outer, outerSig, lerr := it.loopStep(node.Body, ctx)
		if lerr != nil {
			return nil, sigNone, lerr
		}
		if record {
			results = append(results, val)
		}
		if stop {
			if outerSig == sigReturn {
				return outer, sigReturn, nil
			}
			break
		}
	}
	return value.NewList(results), sigNone, nil
}

func (it *Interpreter) evalForEach(node *parser.ForEach, ctx *context.Context) (value.Value, signal, *errors.Error) {
	iterable, _, err := it.eval(node.Iterable, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	var elems []value.Value
	switch v := iterable.(type) {
	case *value.List:
		elems = v.Elements
	case *value.String:
		for i := 0; i < len(v.Val); i++ {
			elems = append(elems, value.NewString(string(v.Val[i])))
		}
	default:
		return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "foreach requires a list or string, got %s", iterable.Kind())
	}

	var results []value.Value
	for _, e := range elems {
		ctx.SymbolTable.Set(node.Var, e)
		val, record, stop, outer, outerSig, lerr := it.loopStep(node.Body, ctx)
		if lerr != nil {
			return nil, sigNone, lerr
		}
		if record {
			results = append(results, val)
		}
		if stop {
			if outerSig == sigReturn {
				return outer, sigReturn, nil
			}
			break
		}
	}
	return value.NewList(results), sigNone, nil
}

func (it *Interpreter) evalWhile(node *parser.While, ctx *context.Context) (value.Value, signal, *errors.Error) {
	var results []value.Value
	for {
		cv, _, err := it.eval(node.Cond, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		if !cv.IsTrue() {
			break
		}
		val, record, stop, outer, outerSig, lerr := it.loopStep(node.Body, ctx)
		if lerr != nil {
			return nil, sigNone, lerr
		}
		if record {
			results = append(results, val)
		}
		if stop {
			if outerSig == sigReturn {
				return outer, sigReturn, nil
			}
			break
		}
	}
	return value.NewList(results), sigNone, nil
}

// triggerVarName walks a condition's left spine to find the identifier
// a `when` should attach to, since the parser leaves When.TriggerVar
// unresolved (see parser.parseWhen's doc comment).
func triggerVarName(n parser.Node) (string, bool) {
	switch t := n.(type) {
	case *parser.VarAccess:
		return t.Name, true
	case *parser.BinOp:
		return triggerVarName(t.Left)
	case *parser.UnaryOp:
		return triggerVarName(t.Expr)
	}
	return "", false
}

func (it *Interpreter) evalWhen(node *parser.When, ctx *context.Context) (value.Value, signal, *errors.Error) {
	name, ok := triggerVarName(node.Cond)
	if !ok {
		return nil, sigNone, errors.New(errors.InvalidSyntax, node.Span(), "when: condition has no identifiable trigger variable")
	}
	owner, exists := ctx.SymbolTable.Owner(name)
	if !exists {
		return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "when: %q must be defined before it can be watched", name)
	}
	trig := &value.Trigger{Node: node, Env: ctx}
	owner.Triggers[name] = append(owner.Triggers[name], trig)
	return value.NewNil(), sigNone, nil
}

// fireTriggers re-checks every live trigger registered on name after a
// rebinding, collecting pending removals into a replacement slice
// rather than mutating owner.Triggers mid-iteration.
func (it *Interpreter) fireTriggers(owner *context.SymbolTable, name string, newVal value.Value) *errors.Error {
	triggers := owner.Triggers[name]
	if len(triggers) == 0 {
		return nil
	}
	alive := make([]*value.Trigger, 0, len(triggers))
	for _, t := range triggers {
		if t.Dead() {
			continue
		}
		whenNode, ok := t.Node.(*parser.When)
		if !ok {
			alive = append(alive, t)
			continue
		}
		env, _ := t.Env.(*context.Context)
		cv, _, err := it.eval(whenNode.Cond, env)
		if err != nil {
			return err
		}
		if cv.IsTrue() {
			it.triggers = append(it.triggers, t)
			_, _, err := it.eval(whenNode.Body, env)
			it.triggers = it.triggers[:len(it.triggers)-1]
			if err != nil {
				return err
			}
			if t.Once {
				t.MarkDead()
				continue
			}
		}
		alive = append(alive, t)
	}
	owner.Triggers[name] = alive
	return nil
}

// evalOnce marks the innermost currently-firing trigger as one-shot; it
// only has meaning inside a `when` body.
func (it *Interpreter) evalOnce(node *parser.Once, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if len(it.triggers) > 0 {
		it.triggers[len(it.triggers)-1].Once = true
	}
	return value.NewNil(), sigNone, nil
}

func (it *Interpreter) evalDefer(node *parser.Defer, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if len(it.calls) > 0 {
		fr := it.calls[len(it.calls)-1]
		fr.defers = append(fr.defers, node.Body)
		return value.NewNil(), sigNone, nil
	}
	return it.eval(node.Body, ctx)
}

// evalTry snapshots the current scope's bindings, runs the try body in
// place, and on error restores the snapshot and runs catch in the same
// scope, surfacing its result.
func (it *Interpreter) evalTry(node *parser.ErrorHandler, ctx *context.Context) (value.Value, signal, *errors.Error) {
	snap := ctx.SymbolTable.Snapshot()
	v, sig, err := it.eval(node.TryBody, ctx)
	if err == nil {
		return v, sig, nil
	}
	ctx.SymbolTable.Restore(snap)
	if node.CatchBody == nil {
		return nil, sigNone, err
	}
	return it.eval(node.CatchBody, ctx)
}
