// Package ui implements the shelf terminal interface with Bubble Tea.
//
// # Overview
//
// The UI renders whatever the stores currently hold and turns key presses into
// store calls. It never changes an entity itself.
//
//	key press ──> Model.handleKey ──> FilmStore.ToggleFavorite
//	                             └──> PersonStore.Add / Update / Remove
//
//	store listener ──> bridge mailbox ──> filmsMsg / peopleMsg ──> Model.Update
//
// # Views
//
//   - Films: the film list, filtered by the current views.Mode (f cycles
//     All → Favorites → Others). Space or enter toggles the favorite flag.
//   - People: the roster. a opens an empty person form, e/enter opens it
//     pre-filled for the selected person, d/x removes the selection.
//
// tab switches between the two lists, T cycles the theme, h/? shows help.
//
// # Person form
//
// Each create or edit interaction gets its own personForm with two text
// inputs. Enter submits: the name is trimmed and the age parsed as an integer;
// if either is absent the form stays open with a hint and no store call is
// made. Esc discards the form.
//
// # Store updates
//
// Store listeners run inside Model.Update (the mutation happens there), so
// they cannot call Program.Send. Instead each store has a one-slot mailbox
// that keeps only the latest snapshot, drained by a pending tea.Cmd. The model
// ignores snapshots older than the one it already holds.
//
// # Preferences
//
// Theme and film filter changes are written to prefs.toml. List contents are
// never saved.
package ui
