/*
File   : interp/expr.go
Package: interp

Identifier read/write, binary/unary operator dispatch, and the
reference-chain (`.`/`@`) access and assignment forms. See
parser.node.go's doc comments for the shapes these evaluate.
*/
package interp

import (
	"github.com/shepherdp/SAFyR-dev/context"
	"github.com/shepherdp/SAFyR-dev/errors"
	"github.com/shepherdp/SAFyR-dev/parser"
	"github.com/shepherdp/SAFyR-dev/value"
)

// evalVarAccess implements the read-copy-vs-borrow rule: a Struct is
// always copied; any other value is copied unless the active context
// is a struct's own context, where it is returned as-is (not copied) so chained
// property mutation can find the live binding.
func (it *Interpreter) evalVarAccess(node *parser.VarAccess, ctx *context.Context) (value.Value, signal, *errors.Error) {
	v, ok := ctx.SymbolTable.Get(node.Name)
	if !ok {
		return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "undefined identifier %q", node.Name)
	}
	if s, isStruct := v.(*value.Struct); isStruct {
		return s.Copy(), sigNone, nil
	}
	if ctx.IsStructContext() {
		return v, sigNone, nil
	}
	return v.Copy(), sigNone, nil
}

var typeTagKinds = map[string]string{"int": "INT", "flt": "FLT", "str": "STR", "lst": "LST", "map": "MAP"}

// coerceNumeric attempts to bring v to the given Kind, widening/
// truncating between INT and FLT per spec.md's "numerically coercible"
// rule; any other kind mismatch fails outright.
func coerceNumeric(v value.Value, want string) (value.Value, bool) {
	n, ok := v.(*value.Number)
	if !ok {
		return v, v.Kind() == want
	}
	switch want {
	case "INT":
		if n.Sub == value.SubInt {
			return v, true
		}
		return value.NewInt(n.AsInt()), true
	case "FLT":
		if n.Sub == value.SubFlt {
			return v, true
		}
		return value.NewFlt(n.AsFloat()), true
	default:
		return v, v.Kind() == want
	}
}

func (it *Interpreter) evalVarAssign(node *parser.VarAssign, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if node.Name == "T" || node.Name == "F" {
		return nil, sigNone, errors.New(errors.ConstantViolation, node.Span(), "%q is reserved and cannot be assigned", node.Name)
	}
	rhs, _, err := it.eval(node.Value, ctx)
	if err != nil {
		return nil, sigNone, err
	}

	owner, exists := ctx.SymbolTable.Owner(node.Name)

	explicitTag := node.TypeTag != "" && node.TypeTag != "var"
	if exists && (explicitTag || node.IsConst) {
		return nil, sigNone, errors.New(errors.InvalidSpecifier, node.Span(),
			"specifiers not allowed on existing variable %q", node.Name)
	}

	var declaredStatic bool
	if explicitTag {
		want := typeTagKinds[node.TypeTag]
		coerced, ok := coerceNumeric(rhs, want)
		if !ok {
			return nil, sigNone, errors.New(errors.StaticViolation, node.Span(),
				"%s is declared %s but assigned a %s", node.Name, node.TypeTag, rhs.Kind())
		}
		rhs = coerced
		declaredStatic = true
	}

	if node.Op != "=" && node.Op != ":=" {
		if !exists {
			return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "cannot augment-assign undefined identifier %q", node.Name)
		}
		current, _ := owner.Get(node.Name)
		combined, cerr := applyAugmented(node.Op, current, rhs)
		if cerr != nil {
			return nil, sigNone, cerr
		}
		rhs = combined
	}

	staticEnforced := declaredStatic || ctx.Static
	if exists {
		current, _ := owner.Get(node.Name)
		if current.Meta().ConstFlag {
			return nil, sigNone, errors.New(errors.ConstantViolation, node.Span(), "%q is const and cannot be reassigned", node.Name)
		}
		if current.Meta().StaticFlag || ctx.Static {
			coerced, ok := coerceNumeric(rhs, current.Kind())
			if !ok {
				return nil, sigNone, errors.New(errors.StaticViolation, node.Span(),
					"static context forbids rebinding %q from %s to %s", node.Name, current.Kind(), rhs.Kind())
			}
			rhs = coerced
			staticEnforced = true
		}
	}

	rhs.Meta().ConstFlag = node.IsConst
	rhs.Meta().StaticFlag = staticEnforced
	rhs.Meta().Span = node.Span()

	target := ctx.SymbolTable
	if exists {
		target = owner
	}
	target.Set(node.Name, rhs)
	if node.IsGlobal {
		ctx.SymbolTable.MarkGlobal(node.Name)
	}
	if err := it.fireTriggers(target, node.Name, rhs); err != nil {
		return nil, sigNone, err
	}
	return rhs, sigNone, nil
}

func applyAugmented(op string, current, rhs value.Value) (value.Value, *errors.Error) {
	var v value.Value
	var err *errors.Error
	switch op {
	case "+=":
		v, err = current.Add(rhs)
	case "-=":
		v, err = current.Sub(rhs)
	case "*=":
		v, err = current.Mul(rhs)
	case "/=":
		v, err = current.Div(rhs)
	case "%=":
		v, err = current.Mod(rhs)
	case "^=":
		v, err = current.Pow(rhs)
	default:
		return nil, errors.New(errors.RuntimeErr, current.Meta().Span, "unknown assignment operator %q", op)
	}
	if err != nil && value.IsUnsupportedOp(err) {
		err = errors.New(errors.NotImplementedErr, current.Meta().Span, "%s does not support %s with %s", current.Kind(), op, rhs.Kind())
	}
	return v, err
}

// evalReferenceAccess walks a `.`/`@` chain for reads.
func (it *Interpreter) evalReferenceAccess(node *parser.ReferenceAccess, ctx *context.Context) (value.Value, signal, *errors.Error) {
	cur, _, err := it.eval(node.Root, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	for _, step := range node.Steps {
		cur, err = it.stepInto(cur, step, ctx)
		if err != nil {
			return nil, sigNone, err
		}
	}
	return cur, sigNone, nil
}

func (it *Interpreter) stepInto(cur value.Value, step parser.RefStep, ctx *context.Context) (value.Value, *errors.Error) {
	if step.IsProperty {
		s, ok := cur.(*value.Struct)
		if !ok {
			return nil, errors.New(errors.RuntimeErr, cur.Meta().Span, "%s has no property %q", cur.Kind(), step.Name)
		}
		v, ok := s.Properties[step.Name]
		if !ok {
			return nil, errors.New(errors.VariableAccess, cur.Meta().Span, "struct %q has no property %q", s.InstanceName, step.Name)
		}
		return v, nil
	}
	idx, _, err := it.eval(step.Index, ctx)
	if err != nil {
		return nil, err
	}
	v, aerr := cur.At(idx)
	if aerr != nil {
		return nil, aerr
	}
	return v, nil
}

// evalReferenceAssign walks all but the last step to find the
// container to mutate, then writes through the last step, honoring the
// canonical-store invariant (a struct's Properties map IS its own
// context's Symbols map, so writing one keeps the other in sync without
// an explicit reconciliation pass).
func (it *Interpreter) evalReferenceAssign(node *parser.ReferenceAssign, ctx *context.Context) (value.Value, signal, *errors.Error) {
	rhs, _, err := it.eval(node.Value, ctx)
	if err != nil {
		return nil, sigNone, err
	}

	root, ok := node.Target.Root.(*parser.VarAccess)
	if !ok {
		return nil, sigNone, errors.New(errors.InvalidSyntax, node.Span(), "assignment target must begin with an identifier")
	}
	cur, owned := ctx.SymbolTable.Get(root.Name)
	if !owned {
		return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "undefined identifier %q", root.Name)
	}

	steps := node.Target.Steps
	for i := 0; i < len(steps)-1; i++ {
		next, serr := it.stepInto(cur, steps[i], ctx)
		if serr != nil {
			return nil, sigNone, serr
		}
		cur = next
	}

	last := steps[len(steps)-1]
	if node.Op != "=" {
		existing, gerr := it.stepInto(cur, last, ctx)
		if gerr != nil {
			return nil, sigNone, gerr
		}
		combined, aerr := applyAugmented(node.Op, existing, rhs)
		if aerr != nil {
			return nil, sigNone, aerr
		}
		rhs = combined
	}

	if last.IsProperty {
		s, ok := cur.(*value.Struct)
		if !ok {
			return nil, sigNone, errors.New(errors.RuntimeErr, cur.Meta().Span, "%s has no property %q", cur.Kind(), last.Name)
		}
		s.SetProperty(last.Name, rhs)
		return rhs, sigNone, nil
	}

	idx, _, ierr := it.eval(last.Index, ctx)
	if ierr != nil {
		return nil, sigNone, ierr
	}
	if err := assignAt(cur, idx, rhs); err != nil {
		return nil, sigNone, err
	}
	return rhs, sigNone, nil
}

// assignAt writes through `@` for the container kinds that support it.
func assignAt(container, idx, v value.Value) *errors.Error {
	switch c := container.(type) {
	case *value.List:
		n, ok := idx.(*value.Number)
		if !ok || n.Sub != value.SubInt {
			return errors.New(errors.InvalidSpecifier, c.Span, "@ index must be an INT")
		}
		i := int(n.I)
		if i < 0 {
			i += len(c.Elements)
		}
		if i < 0 || i >= len(c.Elements) {
			return errors.New(errors.OutOfBounds, c.Span, "index %d out of bounds for list of length %d", n.I, len(c.Elements))
		}
		c.Elements[i] = v
		return nil
	case *value.Map:
		c.Set(idx, v)
		return nil
	default:
		return errors.New(errors.RuntimeErr, container.Meta().Span, "%s does not support indexed assignment", container.Kind())
	}
}

func (it *Interpreter) evalBinOp(node *parser.BinOp, ctx *context.Context) (value.Value, signal, *errors.Error) {
	if node.Op == "DOT" {
		left, _, err := it.eval(node.Left, ctx)
		if err != nil {
			return nil, sigNone, err
		}
		name, ok := node.Right.(*parser.VarAccess)
		if !ok {
			return nil, sigNone, errors.New(errors.InvalidSyntax, node.Span(), "right side of '.' must be a property name")
		}
		s, ok := left.(*value.Struct)
		if !ok {
			return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "%s has no property %q", left.Kind(), name.Name)
		}
		v, ok := s.Properties[name.Name]
		if !ok {
			return nil, sigNone, errors.New(errors.VariableAccess, node.Span(), "struct %q has no property %q", s.InstanceName, name.Name)
		}
		return v, sigNone, nil
	}

	left, _, err := it.eval(node.Left, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	right, _, err := it.eval(node.Right, ctx)
	if err != nil {
		return nil, sigNone, err
	}

	if node.Op == "IN" {
		v, cerr := right.Contains(left)
		if cerr != nil {
			return nil, sigNone, cerr
		}
		return v, sigNone, nil
	}

	result, berr := dispatchBinOp(node.Op, left, right)
	if berr != nil {
		if value.IsUnsupportedOp(berr) {
			berr = errors.New(errors.NotImplementedErr, node.Span(), "%s does not support %s with %s", left.Kind(), node.Op, right.Kind())
		}
		return nil, sigNone, berr
	}
	return result, sigNone, nil
}

func dispatchBinOp(op string, left, right value.Value) (value.Value, *errors.Error) {
	switch op {
	case "PLS":
		return left.Add(right)
	case "MNS":
		return left.Sub(right)
	case "MUL":
		return left.Mul(right)
	case "DIV":
		return left.Div(right)
	case "MOD":
		return left.Mod(right)
	case "POW":
		return left.Pow(right)
	case "EQ":
		return left.Eq(right)
	case "NE":
		return left.Ne(right)
	case "LT":
		return left.Lt(right)
	case "GT":
		return left.Gt(right)
	case "LE":
		return left.Le(right)
	case "GE":
		return left.Ge(right)
	case "AND":
		return left.LogAnd(right)
	case "OR":
		return left.LogOr(right)
	case "NAND":
		return left.LogNand(right)
	case "NOR":
		return left.LogNor(right)
	case "XOR":
		return left.LogXor(right)
	case "INJ":
		return left.Inj(right)
	case "AT":
		return left.At(right)
	case "LSLC":
		return left.SliceLeft(right)
	case "RSLC":
		return left.SliceRight(right)
	default:
		return nil, errors.New(errors.RuntimeErr, left.Meta().Span, "internal: unknown binary operator %q", op)
	}
}

func (it *Interpreter) evalUnaryOp(node *parser.UnaryOp, ctx *context.Context) (value.Value, signal, *errors.Error) {
	operand, _, err := it.eval(node.Expr, ctx)
	if err != nil {
		return nil, sigNone, err
	}
	switch node.Op {
	case "NOT":
		return value.Bool(!operand.IsTrue()), sigNone, nil
	case "PLS":
		if _, ok := operand.(*value.Number); !ok {
			return nil, sigNone, errors.New(errors.NotImplementedErr, node.Span(), "unary + does not support %s", operand.Kind())
		}
		return operand, sigNone, nil
	case "MNS":
		n, ok := operand.(*value.Number)
		if !ok {
			return nil, sigNone, errors.New(errors.NotImplementedErr, node.Span(), "unary - does not support %s", operand.Kind())
		}
		if n.Sub == value.SubInt {
			return value.NewInt(-n.I), sigNone, nil
		}
		return value.NewFlt(-n.F), sigNone, nil
	}
	return nil, sigNone, errors.New(errors.RuntimeErr, node.Span(), "internal: unknown unary operator %q", node.Op)
}
