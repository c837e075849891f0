// Package localstorage is the client's persistent key-value storage area:
// the equivalent of a browser's localStorage for the terminal front end.
//
// Two keys matter to the rest of the client, common.TokenKey and
// common.UsernameKey; see LoadCredentials and SaveCredentials. Clear wipes
// the whole area, not just those two keys.
//
// Implementations:
//   - SQLiteRepository: durable, schema managed by client.InitDatabase.
//   - MemoryRepository: process-lifetime only; tests and throwaway runs.
//
// The browser front end supplies its own Repository over window.localStorage.
package localstorage
