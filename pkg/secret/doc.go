// Package secret provides String, a wrapper for sensitive values such as
// passwords and API keys.
//
// Every rendering path of a String (fmt verbs, JSON, text and YAML encoding,
// and log/slog) yields the fixed Redacted marker. The wrapped value is only
// available through an explicit call to Reveal.
//
//	pw := secret.New("hunter2")
//	fmt.Println(pw)           // **********
//	json.Marshal(pw)          // "**********"
//	slog.Info("login", "password", pw) // password=**********
//	pw.Reveal()               // hunter2
//
// Decoding is the inverse of a normal string: incoming JSON, text or YAML
// values are wrapped as-is, so a String can be used directly as a field of a
// decoded struct.
package secret
