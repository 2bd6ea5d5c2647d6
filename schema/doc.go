// Package schema defines the JSON boundary document accepted by navedge and
// validates it against an embedded JSON Schema before decoding.
//
// Document layout:
//
//	{
//	  "origin":   {"x": 3.5, "y": 0.5},            // optional query origin
//	  "radius":   550,                             // optional, 0 keeps every segment
//	  "segments": [{"start": {...}, "end": {...}}], // required, may be empty
//	  "interior": [[{...}, {...}, {...}]]           // optional walkable polygons
//	}
//
// Points carry x and y; z is optional and passed through untouched.
//
// Errors:
//
//   - ErrInvalidDocument: malformed JSON or a schema violation. The wrapped
//     message lists every violation reported by the validator.
package schema
