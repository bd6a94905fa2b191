package inspect

import (
	"go/types"
	"sort"

	"github.com/pkgscope/pkgscope/internal/domain"
)

type member struct {
	name      string
	invocable bool
}

// Members lists the exported fields and methods of a named type, sorted by
// name. Methods and func-typed fields carry a "()" suffix. Methods come from
// the pointer method set so pointer-receiver and promoted methods are
// included; interfaces contribute their own method set.
func Members(tn *types.TypeName) ([]string, []domain.Outcome) {
	t := types.Unalias(tn.Type())
	owner := tn.Name()

	var outcomes []domain.Outcome
	seen := make(map[string]bool)
	var found []member

	add := func(name string, typ types.Type, invocable bool) {
		if seen[name] {
			return
		}
		seen[name] = true
		if invalid(typ) {
			outcomes = append(outcomes, domain.Outcome{Name: name, Owner: owner, Skip: domain.SkipInvalid})
			return
		}
		found = append(found, member{name: name, invocable: invocable})
		outcomes = append(outcomes, domain.Outcome{Name: name, Owner: owner, Category: domain.CategoryMember})
	}

	if st, ok := t.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if !f.Exported() {
				outcomes = append(outcomes, domain.Outcome{Name: f.Name(), Owner: owner, Skip: domain.SkipUnexported})
				continue
			}
			add(f.Name(), f.Type(), Invocable(f.Type()))
		}
	}

	for _, sel := range methodSet(t).list() {
		if !sel.Exported() {
			outcomes = append(outcomes, domain.Outcome{Name: sel.Name(), Owner: owner, Skip: domain.SkipUnexported})
			continue
		}
		add(sel.Name(), sel.Type(), true)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].name < found[j].name })

	out := make([]string, 0, len(found))
	for _, m := range found {
		if m.invocable {
			out = append(out, m.name+"()")
		} else {
			out = append(out, m.name)
		}
	}
	return out, outcomes
}

type methods struct{ ms *types.MethodSet }

func methodSet(t types.Type) methods {
	if types.IsInterface(t) {
		return methods{types.NewMethodSet(t)}
	}
	if _, isPtr := t.Underlying().(*types.Pointer); isPtr {
		return methods{types.NewMethodSet(t)}
	}
	return methods{types.NewMethodSet(types.NewPointer(t))}
}

func (m methods) list() []types.Object {
	out := make([]types.Object, 0, m.ms.Len())
	for i := 0; i < m.ms.Len(); i++ {
		out = append(out, m.ms.At(i).Obj())
	}
	return out
}
