// Package dom provides a small, mutable document model.
//
// A Document owns a body node and a tree of element, text and raw nodes.
// Builder trees from package vdom are turned into live nodes with
// Document.Mount; event handler props become listeners that fire on
// Node.Dispatch.
//
// Every structural or class change is published to observers registered
// with Document.Observe, which lets a transport push changes to clients.
//
// A Document is not safe for concurrent use. All access must be
// serialized, normally by running it on a single event loop (package loop).
package dom
