// Package template places finished gore stripes onto the bundled print
// templates and writes the result as a PDF.
//
// Each print size has a 4-page template with two gore slots per page.
// Stripe i goes to page i/2, in the left slot when i is even. Stripes are
// scaled to a fixed height on paper and centred on their slot.
//
// Output is reproducible: the file identifier is derived from the stripes
// and the document dates are pinned, so identical stripes always produce
// identical bytes.
//
// The templates are embedded in the binary; WithTemplates swaps in another
// file system, which is mostly useful in tests.
package template
