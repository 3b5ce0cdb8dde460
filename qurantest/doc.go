// Package qurantest provides test doubles for code that uses the quran package.
//
//   - Stub: a fixed-response implementation of quran.API, no network involved
//   - Transport: an http.RoundTripper returning canned responses and recording requests
//   - NewServer: an httptest.Server serving the same fixtures over real HTTP
//
// The fixtures are small, trimmed copies of real API payloads: four editions,
// the language/type/format lists, a two-surah text edition (en.asad) and a
// one-surah audio edition (ar.alafasy) whose last ayah carries a sajda object.
package qurantest
