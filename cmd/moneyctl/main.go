// Command moneyctl is the operator CLI: it issues access tokens and reads
// budget statistics and sync feeds straight from the database.
package main

func main() {
	Execute()
}
