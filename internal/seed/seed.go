package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateSampleData loads a small demo dataset so the queries answer
// something meaningful on a fresh database. Inserts are idempotent and
// the whole step is skipped when courses already exist.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM course`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		lgr.Debug().Msg("Sample data already present, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding sample data...")

	statements := []string{
		`INSERT INTO department (dept_name, building, budget) VALUES
			('Comp. Sci.', 'Taylor', 100000),
			('Physics', 'Watson', 70000),
			('Music', 'Packard', 80000),
			('Biology', 'Watson', 90000),
			('Elec. Eng.', 'Taylor', 85000),
			('History', 'Painter', 50000),
			('Finance', 'Painter', 120000)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO classroom (building, room_number, capacity) VALUES
			('Packard', '101', 500),
			('Painter', '514', 10),
			('Taylor', '3128', 70),
			('Watson', '100', 30),
			('Watson', '120', 50)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO course (course_id, title, dept_name, credits) VALUES
			('BIO-101', 'Intro. to Biology', 'Biology', 4),
			('BIO-301', 'Genetics', 'Biology', 4),
			('CS-101', 'Intro. to Computer Science', 'Comp. Sci.', 4),
			('CS-190', 'Game Design', 'Comp. Sci.', 4),
			('CS-315', 'Robotics', 'Comp. Sci.', 3),
			('CS-319', 'Image Processing', 'Comp. Sci.', 3),
			('CS-347', 'Database System Concepts', 'Comp. Sci.', 3),
			('EE-181', 'Intro. to Digital Systems', 'Elec. Eng.', 3),
			('FIN-201', 'Investment Banking', 'Finance', 3),
			('HIS-351', 'World History', 'History', 3),
			('MU-199', 'Music Video Production', 'Music', 3),
			('PHY-101', 'Physical Principles', 'Physics', 4)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO prereq (course_id, prereq_id) VALUES
			('BIO-301', 'BIO-101'),
			('CS-190', 'CS-101'),
			('CS-315', 'CS-101'),
			('CS-319', 'CS-101'),
			('CS-347', 'CS-101'),
			('EE-181', 'PHY-101')
			ON CONFLICT DO NOTHING`,

		`INSERT INTO instructor (id, name, dept_name, salary) VALUES
			('10101', 'Srinivasan', 'Comp. Sci.', 65000),
			('12121', 'Wu', 'Finance', 90000),
			('15151', 'Mozart', 'Music', 40000),
			('22222', 'Einstein', 'Physics', 95000),
			('32343', 'El Said', 'History', 60000),
			('33456', 'Gold', 'Physics', 87000),
			('45565', 'Katz', 'Comp. Sci.', 75000),
			('58583', 'Califieri', 'History', 62000),
			('76543', 'Singh', 'Finance', 80000),
			('76766', 'Crick', 'Biology', 72000),
			('83821', 'Brandt', 'Comp. Sci.', 92000),
			('98345', 'Kim', 'Elec. Eng.', 80000)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO student (id, name, dept_name, tot_cred) VALUES
			('00128', 'Zhang', 'Comp. Sci.', 102),
			('12345', 'Shankar', 'Comp. Sci.', 32),
			('19991', 'Brandt', 'History', 80),
			('23121', 'Chavez', 'Finance', 110),
			('44553', 'Peltier', 'Physics', 56),
			('45678', 'Levy', 'Physics', 46),
			('54321', 'Williams', 'Comp. Sci.', 54),
			('55739', 'Sanchez', 'Music', 38),
			('70557', 'Snow', 'Physics', 0),
			('76543', 'Brown', 'Comp. Sci.', 58),
			('76653', 'Aoi', 'Elec. Eng.', 60),
			('98765', 'Bourikas', 'Elec. Eng.', 98),
			('98988', 'Tanaka', 'Biology', 120)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO time_slot (time_slot_id, day, start_hr, start_min, end_hr, end_min) VALUES
			('A', 'M', 8, 0, 8, 50),
			('A', 'W', 8, 0, 8, 50),
			('A', 'F', 8, 0, 8, 50),
			('B', 'M', 9, 0, 9, 50),
			('B', 'W', 9, 0, 9, 50),
			('C', 'M', 11, 0, 11, 50),
			('C', 'W', 11, 0, 11, 50),
			('D', 'M', 13, 0, 13, 50),
			('E', 'T', 10, 30, 11, 45),
			('F', 'T', 14, 30, 15, 45),
			('H', 'W', 10, 0, 12, 30)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO section (course_id, sec_id, semester, year, building, room_number, time_slot_id) VALUES
			('BIO-101', '1', 'Summer', 2017, 'Painter', '514', 'B'),
			('BIO-301', '1', 'Summer', 2018, 'Painter', '514', 'A'),
			('CS-101', '1', 'Fall', 2017, 'Packard', '101', 'H'),
			('CS-101', '1', 'Spring', 2018, 'Packard', '101', 'F'),
			('CS-190', '1', 'Spring', 2017, 'Taylor', '3128', 'E'),
			('CS-190', '2', 'Spring', 2017, 'Taylor', '3128', 'A'),
			('CS-315', '1', 'Spring', 2018, 'Watson', '120', 'D'),
			('CS-319', '1', 'Spring', 2018, 'Watson', '100', 'B'),
			('CS-319', '2', 'Spring', 2018, 'Taylor', '3128', 'C'),
			('CS-347', '1', 'Fall', 2017, 'Taylor', '3128', 'A'),
			('EE-181', '1', 'Spring', 2017, 'Taylor', '3128', 'C'),
			('FIN-201', '1', 'Spring', 2018, 'Packard', '101', 'B'),
			('HIS-351', '1', 'Spring', 2018, 'Painter', '514', 'C'),
			('MU-199', '1', 'Spring', 2018, 'Packard', '101', 'D'),
			('PHY-101', '1', 'Fall', 2017, 'Watson', '100', 'A')
			ON CONFLICT DO NOTHING`,

		`INSERT INTO teaches (id, course_id, sec_id, semester, year) VALUES
			('10101', 'CS-101', '1', 'Fall', 2017),
			('10101', 'CS-315', '1', 'Spring', 2018),
			('10101', 'CS-347', '1', 'Fall', 2017),
			('12121', 'FIN-201', '1', 'Spring', 2018),
			('15151', 'MU-199', '1', 'Spring', 2018),
			('22222', 'PHY-101', '1', 'Fall', 2017),
			('32343', 'HIS-351', '1', 'Spring', 2018),
			('45565', 'CS-101', '1', 'Spring', 2018),
			('45565', 'CS-319', '1', 'Spring', 2018),
			('76766', 'BIO-101', '1', 'Summer', 2017),
			('76766', 'BIO-301', '1', 'Summer', 2018),
			('83821', 'CS-190', '1', 'Spring', 2017),
			('83821', 'CS-190', '2', 'Spring', 2017),
			('83821', 'CS-319', '2', 'Spring', 2018),
			('98345', 'EE-181', '1', 'Spring', 2017)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO takes (id, course_id, sec_id, semester, year, grade) VALUES
			('00128', 'CS-101', '1', 'Fall', 2017, 'A'),
			('00128', 'CS-347', '1', 'Fall', 2017, 'A-'),
			('12345', 'CS-101', '1', 'Fall', 2017, 'C'),
			('12345', 'CS-190', '2', 'Spring', 2017, 'A'),
			('12345', 'CS-315', '1', 'Spring', 2018, 'A'),
			('12345', 'CS-347', '1', 'Fall', 2017, 'A'),
			('19991', 'HIS-351', '1', 'Spring', 2018, 'B'),
			('23121', 'FIN-201', '1', 'Spring', 2018, 'C+'),
			('44553', 'PHY-101', '1', 'Fall', 2017, 'B-'),
			('45678', 'CS-101', '1', 'Fall', 2017, 'F'),
			('45678', 'CS-101', '1', 'Spring', 2018, 'B+'),
			('45678', 'CS-319', '1', 'Spring', 2018, 'B'),
			('54321', 'CS-101', '1', 'Fall', 2017, 'A-'),
			('54321', 'CS-190', '2', 'Spring', 2017, 'B+'),
			('55739', 'MU-199', '1', 'Spring', 2018, 'A-'),
			('76543', 'CS-101', '1', 'Fall', 2017, 'A'),
			('76543', 'CS-319', '2', 'Spring', 2018, 'A'),
			('76653', 'EE-181', '1', 'Spring', 2017, 'C'),
			('98765', 'CS-101', '1', 'Fall', 2017, 'C-'),
			('98765', 'CS-315', '1', 'Spring', 2018, 'B'),
			('98988', 'BIO-101', '1', 'Summer', 2017, 'A'),
			('98988', 'BIO-301', '1', 'Summer', 2018, NULL)
			ON CONFLICT DO NOTHING`,

		`INSERT INTO advisor (s_id, i_id) VALUES
			('00128', '45565'),
			('12345', '10101'),
			('23121', '76543'),
			('44553', '22222'),
			('45678', '22222'),
			('76543', '45565'),
			('76653', '98345'),
			('98765', '98345'),
			('98988', '76766')
			ON CONFLICT DO NOTHING`,
	}

	for _, stmt := range statements {
		if _, err := dbPool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	lgr.Info().Msg("Sample data seeded")
	return nil
}
