// Package menu runs the interactive file menu.
//
// A Session repeatedly asks its Provider for the current options, renders
// them, reads a selection and hands it to the Dispatcher. The option list is
// rebuilt on every turn, so a file created while the menu is open shows up
// at the next render and indices are only valid for the render that showed
// them.
//
// Options 1 and 2 are always "exit" and "say hello"; files follow in
// directory-listing order. Choosing a file asks for a yes/no confirmation,
// prints the file with line numbers and ends the session.
package menu
