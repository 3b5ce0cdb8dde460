// Package quran provides a typed client for the Quran editions REST API
// (https://alquran.cloud/api).
//
// The API serves edition metadata (translations, tafsirs, recitations) and
// the complete text or audio of an edition. This package maps every endpoint
// to a typed operation and classifies every failure.
//
// # Architecture
//
//   - API: the interface declaring the nine supported operations
//   - Client: the HTTP implementation of API, sharing one *http.Client
//   - Types: response envelopes and domain models with the API's wire names
//   - Errors: a closed classification of failures (transport, decoding, unclassified)
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := quran.NewClient(quran.DefaultBaseURL, logger,
//		quran.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	editions, err := client.GetEditions(ctx, quran.EditionQuery{
//		Format:   quran.FormatAudio,
//		Language: quran.LanguageAr,
//	})
//
//	text, err := client.GetQuranText(ctx, "en.asad")
//
// # Error Handling
//
// Every operation returns either its typed result or an *Error whose Kind
// is one of:
//
//   - KindTransport: the request did not complete or the status was not a success
//   - KindDecoding: the body did not match the expected shape
//   - KindUnclassified: anything else, such as a missing argument
//
// The kinds can be checked with errors.Is:
//
//	if errors.Is(err, quran.ErrTransport) {
//		// the server or the network failed, retrying may help
//	}
//	if errors.Is(err, quran.ErrDecoding) {
//		// the server answered with an unexpected shape
//	}
//
// The client never retries, caches or rate limits; that is left to callers.
//
// # Sajda
//
// The sajda field of an ayah is either a boolean or an object with the
// recommended and obligatory flags. SajdaType keeps whichever shape was
// received and encodes it back unchanged.
package quran
