package constants

// Aktor sistem untuk mutasi yang datang dari proses sync legacy,
// bukan dari user login.
const SystemActorID int64 = 9999
