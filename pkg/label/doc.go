// Package label derives human-facing relationship labels from field names.
// A reference field such as "userId" yields the label "user"; fields that do
// not carry an "id" suffix (in any case) fall back to the name of the model
// they point at. DeriveLinks applies the same rule to every reference field
// of a model when generating link definitions.
package label
