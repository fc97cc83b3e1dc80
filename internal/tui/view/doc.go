// Package view renders the archive dossier as terminal text.
//
// Rendering is a pure function of its inputs. The caller owns every piece
// of mutable state (reveal flags, tab controllers, the animation clock) and
// passes a snapshot of it in a [RenderState]; the package never mutates it.
//
// # Main Types
//
//   - [Page]: the component tree built once from catalog entries by [BuildPage]
//   - [RenderState]: per-frame inputs such as width, clock, reveal flags and panels
//   - [Document]: rendered lines plus the document region of every observed element
//
// # Components
//
// [Render] lays the page out top to bottom:
//   - Background strip: grid, radar rings, drifting particles, scanline
//   - Hero: classification stamp, title, subtitle, designations, scroll indicator
//   - Section header: "Aircraft Dossiers" with a divider
//   - Cards: header, image block, description, four stat bars, tab header, panel
//   - Footer: logo, repository lines, release marking
//
// The loading screen ([LoadingView]) and the help bar ([HelpBarView]) are
// rendered separately by the application model.
//
// # Observed Elements
//
// Each element that animates on entering the viewport has a stable key
// ([SectionKey], [CardKey], [ImageKey], [DescriptionKey], [BarKey]). The
// region recorded for it in [Document.Placements] is what the caller
// registers with a reveal observer. Unrevealed elements render as blank
// lines of the same height so the layout never shifts when they appear.
package view
