/*
Package textcore is about preparing Unicode text for display: bidi analysis,
itemization and shaping.

Description

Displaying a paragraph of text takes a few steps before any glyph is drawn.
Text in mixed scripts and writing directions has to be analyzed for the
embedding level of every character (UAX#9). Then it is split into items,
i.e., runs of text with a uniform level, script and set of processing
engines. Every item is shaped, producing glyphs with positions and a mapping
from glyphs back to the characters of the text. Finally items are reordered
for display.

Contents

The steps above are implemented in sub-packages:

▪︎ bidi: bidi character types, mirroring and a run-length implementation of
the implicit part of the bidi algorithm, plus reordering of levels (rule L2).

▪︎ engine: a registry of text processing engines. Engines are selected per
script and language, for a given type of engine and a given font backend
(render type).

▪︎ shaping: glyph strings, a basic shaping engine usable with any font
backend, a fallback for text without a suitable engine, and computation of
break attributes.

▪︎ sfntfont: a font backend for TrueType and OpenType fonts, based on
golang.org/x/image/font/sfnt.

▪︎ itemize: splitting of paragraphs into items.

Command bidiview is an interactive tool to look at the results of all the
steps for a line of text.

Tracing

All packages trace to the tracers selected by keys 'textcore.<package>', e.g.,
'textcore.bidi'. Clients are expected to configure tracing with schuko.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package textcore
