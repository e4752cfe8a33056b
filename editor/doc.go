// Package editor implements the kiln terminal editor as a Bubble Tea model.
//
// The package owns input routing across editing modes (normal, search,
// save-as prompt, quit confirmation), viewport scrolling over render
// columns, and frame assembly from the document's render rows. File access
// goes through the narrow Storage boundary; the model never touches the
// filesystem directly.
package editor
