/*
Package operation runs validation and renames over a selection of items.

	+-------------+
	|  Selection  |
	|   (items)   |
	+------+------+
	       |
	+------+------+
	|   Validate  |
	|  (session)  |
	+------+------+
	       |
	+------+------+
	|    Plan     |
	| (synthesize |
	|  + unique)  |
	+------+------+
	       |
	+------+------+
	|    Apply    |
	|  (executor) |
	+-------------+

🎯 Purpose:
- Classifies items and reports Undefined and Invalid ones
- Builds one proposal per item, numbering renamable items in selection order
- Applies proposals through an Executor and records them with an ActionLogger

🤝 Interfaces:
- Executor: performs renames (OSExecutor for the local filesystem)
- ActionLogger: receives "rename" and "dry-rename" actions

🔍 Example:

	op, err := operation.New(operation.Options{
		Session:  sess,
		Executor: operation.OSExecutor{},
		Logger:   actions,
	})
	proposals, errs := op.Plan(ctx, items, operation.PlanOptions{Unique: true})
	applied, err := op.Apply(ctx, proposals, false)
*/
package operation
