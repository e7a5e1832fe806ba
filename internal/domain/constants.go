package domain

// Starting balance granted on first contact.
const StartingPoints = 1000

// PointsPerMessage is accrued for every chat message seen.
const PointsPerMessage = 1
