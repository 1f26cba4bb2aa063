package seed

// GenerateInput は生成処理の入力です。
type GenerateInput struct {
	EmployeeCount int
}

// Summary は 1 回の実行で新規に作成された行数です。
// 既存行を再利用した場合は数えないため、同一入力での再実行はすべて 0 になります。
type Summary struct {
	EmployeesCreated    int
	AttendancesCreated  int
	PerformancesCreated int
	GoalsCreated        int
	DepartmentsCreated  int
	PositionsCreated    int
	TimeLogsCreated     int
	ReviewsCreated      int
}

func (s *Summary) add(other Summary) {
	s.EmployeesCreated += other.EmployeesCreated
	s.AttendancesCreated += other.AttendancesCreated
	s.PerformancesCreated += other.PerformancesCreated
	s.GoalsCreated += other.GoalsCreated
	s.DepartmentsCreated += other.DepartmentsCreated
	s.PositionsCreated += other.PositionsCreated
	s.TimeLogsCreated += other.TimeLogsCreated
	s.ReviewsCreated += other.ReviewsCreated
}
