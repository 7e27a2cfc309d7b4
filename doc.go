package teacollection

// Package teacollection provides:
//
// - The Transparency Exchange Collection entities (Collection, Artefact, Format) with a builder API
// - Validation of untrusted collection documents that reports every violation in one pass
// - A stable error model via Issues (JSON Pointer, code, message)
// - JSON and YAML input with duplicate-key/depth/size enforcement
// - Serialization back to an ordered document tree, JSON or YAML
// - A JSON Schema export of the accepted document shape
//
// Design policy:
// - Keep only public APIs in the root package; put token handling under internal/ and source/.
// - Dispatch document keys through per-level setter tables rather than conditional chains.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  coll, err := teacollection.ParseFrom(ctx, teacollection.JSONBytes(data))
//  if iss, ok := teacollection.AsIssues(err); ok {
//      for _, m := range iss.Messages() { fmt.Println(m) }
//  }
//
//  out, err := teacollection.Marshal(coll)
//
