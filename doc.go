/*
Package flattree implements a “flat tree”: a hierarchy (a file tree, an outline,
a UI node tree) stored as a single pre-order sequence of nodes instead of
pointer-linked nodes.

Each node carries its payload, its level (nesting depth, roots at 0), whether it
has children, and the index of the last node of its subtree. A node and all of
its descendants always occupy the contiguous range [index, LastChildIndex], so
children, ancestors and subtrees can be found without ever materializing
parent/child links.

# Building

A tree is built in two single-pass steps:

1. Expand walks the hierarchy from the root payloads, asking a ChildrenFunc
for the children of each payload exactly once, and emits raw nodes in
pre-order. It uses an explicit work list, so deep hierarchies don't recurse.

2. Resolve walks the raw nodes backwards and computes LastChildIndex for every
node, matching each parent with the node that closes its subtree, much like
matching brackets by depth.

Delete re-runs Resolve over the remaining nodes, so it is O(n) regardless of the
size of the deleted subtree. ReplacePayload never touches the structure.

# Snapshots

MarshalSnapshot and UnmarshalSnapshot convert a tree to and from bytes, for
handing it over to another runtime.

File format: header record* trailer

  - header = magic:"FLTR" version:uvarint count:uvarint
  - record = msgpack array [level, hasChildren, payload]
  - trailer = xxhash64 of everything before it, big endian

LastChildIndex is not stored; decoding recomputes it.
*/
package flattree
